package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{userRepo: repo, logger: log}
}

type RegisterInput struct {
	Username string
	Password string
}

type RegisterOutput struct {
	UserID uuid.UUID
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("username and password are required", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
		Role:         user.RoleUser,
	}

	// uniqueness is enforced by the store; a duplicate surfaces as Conflict
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	return &RegisterOutput{UserID: newUser.ID}, nil
}
