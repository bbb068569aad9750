package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("username or password is incorrect")
)

// AdminBootstrap is the env-provisioned owner account. It is checked before
// the users table so the dashboard stays reachable on a fresh database.
type AdminBootstrap struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	admin    AdminBootstrap
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, admin AdminBootstrap, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		admin:    admin,
		logger:   log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	role, err := uc.authorize(ctx, input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(input.Username, role)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("username", input.Username))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("username", input.Username))
	return &LoginOutput{AccessToken: token}, nil
}

func (uc *LoginUseCase) authorize(ctx context.Context, input LoginInput) (string, error) {
	if uc.admin.Username != "" && uc.admin.Password != "" &&
		input.Username == uc.admin.Username && input.Password == uc.admin.Password {
		return user.RoleAdmin, nil
	}

	u, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", apperror.NewUnauthorized("unknown username", nil)
		}
		return "", err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return "", apperror.NewUnauthorized("incorrect password", nil)
	}
	return u.Role, nil
}
