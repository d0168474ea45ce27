package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/internal/service"
	"teamflow/backend/pkg/response"
)

// Handler 所有 HTTP Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Employee     *EmployeeHandler
	Absence      *AbsenceHandler
	Notification *NotificationHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, logger),
		Employee:     NewEmployeeHandler(svc.Employee, logger),
		Absence:      NewAbsenceHandler(svc.Absence, logger),
		Notification: NewNotificationHandler(svc.Notification, logger),
		Export:       NewExportHandler(svc.Export, logger),
	}
}

// respondServiceError 把服务层哨兵错误映射为统一响应
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAbsenceNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrSubstituteNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, 40400, err.Error())
	case errors.Is(err, service.ErrAbsenceNotPending),
		errors.Is(err, service.ErrAbsenceTerminal):
		response.Conflict(c, 40900, err.Error())
	case errors.Is(err, service.ErrInvalidAbsenceType),
		errors.Is(err, service.ErrInvalidDateFormat),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrSubstituteIsRequester):
		response.BadRequest(c, 40000, err.Error())
	case errors.Is(err, service.ErrNotRequestOwner),
		errors.Is(err, service.ErrNotSubstitute):
		response.Forbidden(c, 40300, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefreshToken):
		response.Unauthorized(c, 40100, err.Error())
	default:
		response.InternalError(c)
	}
}
