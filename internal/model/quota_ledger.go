package model

// QuotaLedger 假期配额台账 — 对应 quota_ledgers
// 每员工 × 年份 × 请假类型一行；used_days + planned_days ≤ total_days
// 仅为软约束，系统只做计数，不硬性拦截超额
type QuotaLedger struct {
	QuotaLedgerID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"quota_ledger_id"`
	CompanyID     string      `gorm:"type:uuid;not null"                             json:"company_id"`
	EmployeeID    string      `gorm:"type:uuid;not null"                             json:"employee_id"`
	Year          int         `gorm:"not null"                                       json:"year"`
	Type          AbsenceType `gorm:"type:varchar(30);not null"                      json:"type"`
	TotalDays     int         `gorm:"not null;default:0"                             json:"total_days"`
	UsedDays      int         `gorm:"not null;default:0"                             json:"used_days"`
	PlannedDays   int         `gorm:"not null;default:0"                             json:"planned_days"`
	BaseModel
}

// TableName 指定表名
func (QuotaLedger) TableName() string { return "quota_ledgers" }
