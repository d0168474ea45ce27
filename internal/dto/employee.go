package dto

// EmployeeResponse 员工信息响应（脱敏）
type EmployeeResponse struct {
	ID                    string           `json:"id"`
	CompanyID             string           `json:"company_id"`
	Name                  string           `json:"name"`
	Email                 string           `json:"email"`
	Role                  string           `json:"role"`
	ManagerID             *string          `json:"manager_id,omitempty"`
	Department            *DepartmentBrief `json:"department,omitempty"`
	VacationDays          int              `json:"vacation_days"`
	RemainingVacationDays int              `json:"remaining_vacation_days"`
}

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	PaginationRequest
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}
