package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/models/request_models"
	"reviewhub/internal/models/response_models"
	"reviewhub/internal/services"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/utils"
)

type AuthController struct {
	authService      services.AuthServiceInterface
	loginRedirectURL string
}

func NewAuthController(authService services.AuthServiceInterface, loginRedirectURL string) *AuthController {
	return &AuthController{
		authService:      authService,
		loginRedirectURL: loginRedirectURL,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 24*60*60, "/", "", false, true)
	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}

// LoginRedirect handles the browser entry point by sending callers to the
// login page.
// @Summary Redirect to the login page
// @Tags Auth
// @Router /api/login [get]
func (a *AuthController) LoginRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, a.loginRedirectURL)
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out")
}

// CurrentUser godoc
// @Summary Get the logged-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/user [get]
func (a *AuthController) CurrentUser(c *gin.Context) {
	user, err := a.authService.CurrentUser(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ToUserResponse(user), "User fetched successfully")
}
