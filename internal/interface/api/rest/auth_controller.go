package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JoseAcuna0/insightflow-users-service/internal/application/ports"
	"github.com/JoseAcuna0/insightflow-users-service/internal/application/services"
	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/jwt"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/dto/auth"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/dto/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/middleware"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/validator"
)

// genericLoginError is the only message a failed login may carry; it never
// says whether the identifier or the password was wrong.
const genericLoginError = "invalid identifier or password"

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteMe, middleware.AuthMiddleware(jwtService), ac.MeHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": genericLoginError},
		)
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": genericLoginError},
		)
		return
	}

	u, err := ac.userService.FindUserByIdentifier(c.Request.Context(), req.Identifier)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindUserByIdentifier() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": genericLoginError},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				gin.H{"error": genericLoginError},
			)
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user.ToResponseUser(*u),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return
	}

	u, err := ac.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				gin.H{"error": "user not found"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
