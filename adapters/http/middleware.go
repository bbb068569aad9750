package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
	"github.com/sharafhazem/portfolio-ops/pkg/logger"
)

const (
	GinContextKeyUsername = "username"
	GinContextKeyRole     = "role"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Error: "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUsername, claims.Username)
		c.Set(GinContextKeyRole, claims.Role)

		c.Next()
	}
}

// AdminOnly sits behind AuthMiddleware on the dashboard routes.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(GinContextKeyRole)
		if role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Error: "Admin access required"})
			return
		}
		c.Next()
	}
}

// ErrorMiddleware turns errors collected via c.Error into the response
// envelope. Handlers never write error bodies themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", err, zap.String("path", c.FullPath()), zap.Int("status", status))
		} else {
			log.Warn("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.String("reason", err.Error()))
		}

		c.JSON(status, Envelope{Success: false, Error: apperror.PublicMessage(err)})
	}
}
