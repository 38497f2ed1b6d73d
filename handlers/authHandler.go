package handlers

import (
	"MedicareClinic/middlewares"
	"MedicareClinic/models"
	"MedicareClinic/services"
	"MedicareClinic/utils"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
	activityLog *services.ActivityLogService
}

func NewAuthHandler(userService services.UserService, activityLog *services.ActivityLogService) *AuthHandler {
	return &AuthHandler{UserService: userService, activityLog: activityLog}
}

// Register handles new user registration. Accounts start unapproved and
// cannot log in until the doctor approves them.
func (h *AuthHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Self-registration never grants elevated access.
	user.Role = models.RoleStaff
	user.Approved = false

	if err := h.UserService.RegisterUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Registration failed: %v", err)})
		return
	}

	c.Status(http.StatusCreated)
}

// Login authenticates the user and returns tokens along with user info.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotApproved) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account pending approval"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.UUID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	h.activityLog.Record(ctx, user.UUID, "Logged in")

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user": gin.H{
			"uuid":       user.UUID,
			"email":      user.Email,
			"screenname": user.Screenname,
			"role":       user.Role,
		},
	})
}

// RefreshToken issues a fresh access token from a still-valid one.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := c.GetHeader("X-Access-Token")
	if token == "" {
		token = c.DefaultQuery("accessToken", "")
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Access token is required"})
		return
	}

	claims, err := utils.ValidateToken(token, models.RoleStaff, models.RoleDoctor)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logoff logs the user out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(http.StatusOK)
}

// GetUserProfile returns the authenticated user's own record.
func (h *AuthHandler) GetUserProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := middlewares.ExtractUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	user, err := h.UserService.GetUserByUUID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUserProfile updates the authenticated user's screenname and email.
func (h *AuthHandler) UpdateUserProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := middlewares.ExtractUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var body struct {
		Screenname string `json:"screenname"`
		Email      string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.UpdateUserProfile(ctx, userID, body.Screenname, body.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.activityLog.Record(ctx, userID, "Updated own profile")
	c.Status(http.StatusOK)
}

// SendResetCode emails a password reset code. The response does not reveal
// whether the email is registered.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.UserService.RequestPasswordReset(c.Request.Context(), body.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset code has been sent"})
}

// ChangePassword completes the reset flow with the emailed code.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body struct {
		Email       string `json:"email"`
		ResetCode   string `json:"resetCode"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.ResetPassword(c.Request.Context(), body.Email, body.ResetCode, body.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// AdminManageUsers lists every account for the user administration screen.
func (h *AuthHandler) AdminManageUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveUser toggles an account's approval.
func (h *AuthHandler) ApproveUser(c *gin.Context) {
	uuid := c.Param("uuid")
	var body struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.ApproveUser(ctx, uuid, body.Approved); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Set approval=%t for user %s", body.Approved, uuid))
	c.Status(http.StatusOK)
}

// DeleteAccount removes a user account.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	uuid := c.Param("uuid")
	if err := h.UserService.DeleteUser(c.Request.Context(), uuid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Deleted user %s", uuid))
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
