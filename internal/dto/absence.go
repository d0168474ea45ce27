package dto

// ── 请假模块请求 ──

// SubmitAbsenceRequest 提交请假申请
type SubmitAbsenceRequest struct {
	Type      string `json:"type"       binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date"   binding:"required"` // YYYY-MM-DD
	Reason    string `json:"reason"     binding:"omitempty,max=500"`
}

// RejectAbsenceRequest 驳回请假申请
type RejectAbsenceRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// CancelAbsenceRequest 取消请假申请
type CancelAbsenceRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// AssignSubstituteRequest 指定代理人
type AssignSubstituteRequest struct {
	SubstituteID string `json:"substitute_id" binding:"required,uuid"`
}

// AbsenceListRequest 请假列表查询参数
type AbsenceListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled archived"`
	Type   string `form:"type"   binding:"omitempty"`
}

// SubstituteQueryRequest 可用代理人查询参数
type SubstituteQueryRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date"   binding:"required"`
}

// StatisticsRequest 统计查询参数
type StatisticsRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Year       int    `form:"year"        binding:"omitempty,min=2000,max=2100"`
}

// ── 请假模块响应 ──

// AbsenceResponse 请假申请响应
type AbsenceResponse struct {
	ID                  string         `json:"id"`
	CompanyID           string         `json:"company_id"`
	EmployeeID          *string        `json:"employee_id,omitempty"`
	RequesterLabel      string         `json:"requester_label,omitempty"`
	Type                string         `json:"type"`
	TypeLabel           string         `json:"type_label"`
	Status              string         `json:"status"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	WorkingDays         int            `json:"working_days"`
	Reason              string         `json:"reason,omitempty"`
	SubstituteID        *string        `json:"substitute_id,omitempty"`
	SubstituteConfirmed bool           `json:"substitute_confirmed"`
	Substitute          *EmployeeBrief `json:"substitute,omitempty"`
	ApprovedBy          *string        `json:"approved_by,omitempty"`
	ApprovedAt          *string        `json:"approved_at,omitempty"`
	RejectedAt          *string        `json:"rejected_at,omitempty"`
	RejectedReason      string         `json:"rejected_reason,omitempty"`
	CancelledAt         *string        `json:"cancelled_at,omitempty"`
	CancelledReason     string         `json:"cancelled_reason,omitempty"`
	Employee            *EmployeeBrief `json:"employee,omitempty"`
	CreatedAt           string         `json:"created_at"`
}

// ShiftConflictResponse 班次冲突检测响应
type ShiftConflictResponse struct {
	HasConflict bool            `json:"has_conflict"`
	Conflicts   []ShiftConflict `json:"conflicts"`
}

// ShiftConflict 单条冲突班次
type ShiftConflict struct {
	ShiftID   string `json:"shift_id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// QuotaResponse 假期配额概览
type QuotaResponse struct {
	Year          int `json:"year"`
	TotalDays     int `json:"total_days"`
	UsedDays      int `json:"used_days"`
	PlannedDays   int `json:"planned_days"`
	RemainingDays int `json:"remaining_days"`
}

// AbsenceStatisticsResponse 请假统计响应
type AbsenceStatisticsResponse struct {
	TotalRequests  int            `json:"total_requests"`
	TotalDays      int            `json:"total_days"`
	ByType         map[string]int `json:"by_type"`
	ByMonth        map[string]int `json:"by_month"` // "2026-01" → 条数
	ByStatus       map[string]int `json:"by_status"`
	VacationQuota  QuotaResponse  `json:"vacation_quota"`
}

// SubstituteCandidate 可用代理人
type SubstituteCandidate struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Department *DepartmentBrief `json:"department,omitempty"`
}
