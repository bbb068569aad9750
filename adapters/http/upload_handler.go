package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sharafhazem/portfolio-ops/internal/application/usecase/upload"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

type UploadHandler struct {
	signUseCase *upload.SignUploadUseCase
}

func NewUploadHandler(signUC *upload.SignUploadUseCase) *UploadHandler {
	return &UploadHandler{signUseCase: signUC}
}

// SignUpload signs the client-supplied upload parameters so the browser can
// push media straight to the CDN. The API secret never leaves the server.
func (h *UploadHandler) SignUpload(c *gin.Context) {
	var req SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for sign request", err))
		return
	}

	input := upload.SignUploadInput{ParamsToSign: req.ParamsToSign}
	output, err := h.signUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respondSignature(c, output.Signature)
}
