package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/service"
	"teamflow/backend/pkg/response"
)

// EmployeeHandler 员工查询接口
type EmployeeHandler struct {
	svc    service.EmployeeService
	logger *zap.Logger
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(svc service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, logger: logger}
}

// List GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), companyIDFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), companyIDFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
