// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bootcamp-api/internal/middleware"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/service"
	"bootcamp-api/pkg/response"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service      service.AuthServicer
	cookieMaxAge int
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. cookieMaxAge is the session
// cookie lifetime in seconds; secureCookie restricts it to HTTPS.
func NewAuthHandler(service service.AuthServicer, cookieMaxAge int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

// sendTokenResponse mirrors the token into an httpOnly cookie and returns
// it in the body, so both browser and API clients can hold the session.
func (h *AuthHandler) sendTokenResponse(c *gin.Context, status int, token string) {
	c.SetCookie(middleware.TokenCookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
	c.JSON(status, response.Response{
		Success: true,
		Data:    models.TokenResponse{Token: token},
	})
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "Registration details"
// @Success      201      {object}  response.Response{data=models.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusCreated, token)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.secureCookie, true)
	response.Success(c, gin.H{})
}

// GetMe godoc
// @Summary      Get current user
// @Description  Return the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	response.Success(c, middleware.GetCurrentUser(c))
}

// UpdateDetails godoc
// @Summary      Update profile
// @Description  Update the authenticated user's name and email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.UpdateDetailsRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/updatedetails [put]
func (h *AuthHandler) UpdateDetails(c *gin.Context) {
	var req models.UpdateDetailsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	updated, err := h.service.UpdateDetails(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, updated)
}

// UpdatePassword godoc
// @Summary      Change password
// @Description  Change the authenticated user's password and receive a fresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.UpdatePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response{data=models.TokenResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/updatepassword [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	token, err := h.service.UpdatePassword(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}

// ForgotPassword godoc
// @Summary      Request password reset
// @Description  Email a reset token to the account's address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "email sent"})
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password using an emailed reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        resettoken  path      string                        true  "Reset token from the email"
// @Param        request     body      models.ResetPasswordRequest  true  "New password"
// @Success      200         {object}  response.Response{data=models.TokenResponse}
// @Failure      400         {object}  response.Response
// @Router       /auth/resetpassword/{resettoken} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	token, err := h.service.ResetPassword(c.Request.Context(), c.Param("resettoken"), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}
