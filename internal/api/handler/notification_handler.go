package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/service"
	"teamflow/backend/pkg/response"
)

// NotificationHandler 站内通知接口
type NotificationHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(svc service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, logger: logger}
}

// List GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var req dto.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), companyIDFrom(c), employeeIDFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// MarkRead PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), companyIDFrom(c), employeeIDFrom(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
