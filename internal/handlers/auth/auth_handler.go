package auth

import (
	"net/http"

	"vos-erp-service/internal/domain/user"
	"vos-erp-service/internal/pkg/response"
	authService "vos-erp-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authService.Service
	cookies     *CookieWriter
	logger      *zap.Logger
}

func NewAuthHandler(svc *authService.Service, cookies *CookieWriter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: svc,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login authenticates with email and password, rotates the stored session
// pointer, and delivers the token pair as cookies. The body echoes the claim
// set only; tokens never appear in JSON.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password are required")
		return
	}
	req.IPAddress = c.ClientIP()

	res, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		response.FromError(c, err)
		return
	}

	h.cookies.Write(c, res.AccessToken, res.RefreshToken)
	response.OK(c, http.StatusOK, gin.H{"user": res.User})
}

// LoginRFID authenticates with a badge scan. No password is involved; the
// badge id acts as the credential.
func (h *AuthHandler) LoginRFID(c *gin.Context) {
	var req user.RFIDLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "rf is required")
		return
	}
	req.IPAddress = c.ClientIP()

	res, err := h.authService.LoginRFID(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("rfid login failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	h.cookies.Write(c, res.AccessToken, res.RefreshToken)
	response.OK(c, http.StatusOK, gin.H{"user": res.User})
}

// Logout clears the cookie pair and, when the access cookie still verifies,
// rotates the stored session pointer so the old token value is dead
// server-side too. An unverifiable cookie is not an error: logout always
// succeeds from the client's point of view.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(h.cookies.AccessName); err == nil && raw != "" {
		if claims, err := h.authService.VerifyAccessToken(raw); err == nil {
			if err := h.authService.Logout(c.Request.Context(), claims.UserID()); err != nil {
				h.logger.Warn("failed to clear session on logout", zap.Error(err))
			}
		}
	}

	h.cookies.Clear(c)
	response.OK(c, http.StatusOK, gin.H{"message": "logged out"})
}
