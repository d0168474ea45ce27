package model

// Employee 员工档案表 — 对应 employees
// UserID 是登录身份；同一用户在不同公司可有多份档案，查询必须带 company_id
type Employee struct {
	EmployeeID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	CompanyID             string  `gorm:"type:uuid;not null"                             json:"company_id"`
	DepartmentID          *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	ManagerID             *string `gorm:"type:uuid"                                      json:"manager_id,omitempty"`
	UserID                string  `gorm:"type:uuid;not null"                             json:"user_id"`
	Name                  string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email                 string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash          string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role                  string  `gorm:"type:varchar(20);not null;default:'employee'"   json:"role"` // employee | manager | admin
	VacationDays          int     `gorm:"not null;default:30"                            json:"vacation_days"`
	RemainingVacationDays int     `gorm:"not null;default:30"                            json:"remaining_vacation_days"`
	SoftDeleteModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
	Manager    *Employee   `gorm:"foreignKey:ManagerID;references:EmployeeID"      json:"manager,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
