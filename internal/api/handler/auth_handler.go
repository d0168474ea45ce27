package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/service"
	"teamflow/backend/pkg/response"
)

// AuthHandler 认证相关接口
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, 40104, "token 无效")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID := employeeIDFrom(c)
	if employeeID == "" {
		response.NotFound(c, 40401, "当前账号无员工档案")
		return
	}

	resp, err := h.svc.Me(c.Request.Context(), companyIDFrom(c), employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
