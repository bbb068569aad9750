package upload

import (
	"context"

	"github.com/sharafhazem/portfolio-ops/adapters/media_storage"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

type SignUploadUseCase struct {
	signer *media_storage.Signer
}

func NewSignUploadUseCase(signer *media_storage.Signer) *SignUploadUseCase {
	return &SignUploadUseCase{signer: signer}
}

type SignUploadInput struct {
	ParamsToSign map[string]any
}

type SignUploadOutput struct {
	Signature string
}

func (uc *SignUploadUseCase) Execute(_ context.Context, input SignUploadInput) (*SignUploadOutput, error) {
	if len(input.ParamsToSign) == 0 {
		return nil, apperror.NewInvalidInput("missing parameters to sign", nil)
	}

	signature, err := uc.signer.Sign(input.ParamsToSign)
	if err != nil {
		return nil, err
	}
	return &SignUploadOutput{Signature: signature}, nil
}
