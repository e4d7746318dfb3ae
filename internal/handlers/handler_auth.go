package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/SscSPs/cashclaim/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles enrolment and login.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes. Both are rate limited per IP.
func registerAuthRoutes(r *gin.Engine, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(us, ts)
	limit := middleware.RateLimit(loginLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/register", limit, h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by name and access code and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Name, req.AccessCode)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	principal := h.userService.PrincipalFor(user.Name)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user", user.Name))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, IsAdmin: principal.IsAdmin})
}

// register godoc
// @Summary Register new user
// @Description Creates a user together with its Main project.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	newUser, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}
