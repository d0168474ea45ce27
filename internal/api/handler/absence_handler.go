package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/service"
	"teamflow/backend/pkg/response"
)

// AbsenceHandler 请假工作流接口
type AbsenceHandler struct {
	svc    service.AbsenceService
	logger *zap.Logger
}

// NewAbsenceHandler 创建 AbsenceHandler
func NewAbsenceHandler(svc service.AbsenceService, logger *zap.Logger) *AbsenceHandler {
	return &AbsenceHandler{svc: svc, logger: logger}
}

// Submit POST /api/v1/absences
func (h *AbsenceHandler) Submit(c *gin.Context) {
	var req dto.SubmitAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	// 无员工档案的管理员走降级路径，用账号 ID 合成申请人标签
	var employeeID *string
	requesterLabel := ""
	if id := employeeIDFrom(c); id != "" {
		employeeID = &id
	} else {
		requesterLabel = "admin:" + userIDFrom(c)
	}

	resp, err := h.svc.Submit(c.Request.Context(), companyIDFrom(c), employeeID, requesterLabel, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

// List GET /api/v1/absences
func (h *AbsenceHandler) List(c *gin.Context) {
	var req dto.AbsenceListRequest
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

// ListMine GET /api/v1/absences/my
func (h *AbsenceHandler) ListMine(c *gin.Context) {
	employeeID := employeeIDFrom(c)
	if employeeID == "" {
		response.OK(c, []dto.AbsenceResponse{})
		return
	}

	list, err := h.svc.ListMine(c.Request.Context(), companyIDFrom(c), employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, list)
}

// Get GET /api/v1/absences/:id
func (h *AbsenceHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), companyIDFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Approve PUT /api/v1/absences/:id/approve
func (h *AbsenceHandler) Approve(c *gin.Context) {
	resp, err := h.svc.Approve(c.Request.Context(), companyIDFrom(c), c.Param("id"), employeeIDFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Reject PUT /api/v1/absences/:id/reject
func (h *AbsenceHandler) Reject(c *gin.Context) {
	// 驳回原因可选：不带请求体等同于空原因
	var req dto.RejectAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.Reject(c.Request.Context(), companyIDFrom(c), c.Param("id"), employeeIDFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Cancel PUT /api/v1/absences/:id/cancel
func (h *AbsenceHandler) Cancel(c *gin.Context) {
	// 取消原因可选：不带请求体等同于空原因
	var req dto.CancelAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.Cancel(c.Request.Context(), companyIDFrom(c), c.Param("id"),
		employeeIDFrom(c), roleFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// AssignSubstitute PUT /api/v1/absences/:id/substitute
func (h *AbsenceHandler) AssignSubstitute(c *gin.Context) {
	var req dto.AssignSubstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.AssignSubstitute(c.Request.Context(), companyIDFrom(c), c.Param("id"),
		employeeIDFrom(c), roleFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// ConfirmSubstitute PUT /api/v1/absences/:id/substitute/confirm
func (h *AbsenceHandler) ConfirmSubstitute(c *gin.Context) {
	resp, err := h.svc.ConfirmSubstitute(c.Request.Context(), companyIDFrom(c), c.Param("id"), employeeIDFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// CheckConflicts GET /api/v1/absences/:id/conflicts
func (h *AbsenceHandler) CheckConflicts(c *gin.Context) {
	resp, err := h.svc.CheckShiftConflicts(c.Request.Context(), companyIDFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Statistics GET /api/v1/absences/statistics
func (h *AbsenceHandler) Statistics(c *gin.Context) {
	var req dto.StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	// 普通员工只能看本人的统计
	if roleFrom(c) == "employee" {
		req.EmployeeID = employeeIDFrom(c)
	}

	resp, err := h.svc.GetStatistics(c.Request.Context(), companyIDFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// AvailableSubstitutes GET /api/v1/absences/substitutes
func (h *AbsenceHandler) AvailableSubstitutes(c *gin.Context) {
	var req dto.SubstituteQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "请求参数无效")
		return
	}

	resp, err := h.svc.GetAvailableSubstitutes(c.Request.Context(), companyIDFrom(c), employeeIDFrom(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
