package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sharafhazem/portfolio-ops/adapters/persistence"
	authUC "github.com/sharafhazem/portfolio-ops/internal/application/usecase/auth"
	"github.com/sharafhazem/portfolio-ops/internal/config"
	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	testUser user.User
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {

	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)
	s.testUser = user.User{
		ID:           uuid.New(),
		Username:     "e2e_test_user",
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}
	query := `INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO UPDATE SET password_hash = $3, role = $4`
	_, err = dbPool.Exec(context.Background(), query, s.testUser.ID, s.testUser.Username, s.testUser.PasswordHash, s.testUser.Role)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed user: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, authUC.AdminBootstrap{}, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, appLogger)
	authHandler := NewAuthHandler(loginUseCase, registerUseCase)
	authMiddleware := AuthMiddleware(jwtSvc)
	errorMiddleware := ErrorMiddleware(appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)
			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware, AdminOnly())
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					c.JSON(http.StatusOK, gin.H{"status": "OK"})
				})
			}
		}
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {}

func TestAuthE2E(t *testing.T) {

	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) Test_Login_Flow() {

	bodyBad, _ := json.Marshal(gin.H{"username": s.testUser.Username, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")

	rrBad := httptest.NewRecorder()
	s.Router.ServeHTTP(rrBad, reqBad)

	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	bodyGood, _ := json.Marshal(gin.H{"username": s.testUser.Username, "password": s.testPass})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")

	rrGood := httptest.NewRecorder()
	s.Router.ServeHTTP(rrGood, reqGood)

	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]string
	json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access_token"]
	assert.NotEmpty(s.T(), accessToken)

	reqAuth := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	reqAuth.Header.Set("Authorization", "Bearer "+accessToken)

	rrAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAuth, reqAuth)

	assert.Equal(s.T(), http.StatusOK, rrAuth.Code)

	reqNoAuth := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	rrNoAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrNoAuth, reqNoAuth)

	assert.Equal(s.T(), http.StatusUnauthorized, rrNoAuth.Code)
}
