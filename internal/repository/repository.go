package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Company      CompanyRepository
	Department   DepartmentRepository
	Employee     EmployeeRepository
	Absence      AbsenceRequestRepository
	QuotaLedger  QuotaLedgerRepository
	Shift        ShiftRepository
	Notification NotificationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Company:      NewCompanyRepo(db),
		Department:   NewDepartmentRepo(db),
		Employee:     NewEmployeeRepo(db),
		Absence:      NewAbsenceRequestRepo(db),
		QuotaLedger:  NewQuotaLedgerRepo(db),
		Shift:        NewShiftRepo(db),
		Notification: NewNotificationRepo(db),
	}
}
