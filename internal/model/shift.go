package model

import "time"

// Shift 排班表 — 对应 shifts
// 请假冲突检测只读引用此表；cancelled 状态的班次不参与冲突判断
type Shift struct {
	ShiftID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	CompanyID  string    `gorm:"type:uuid;not null"                             json:"company_id"`
	EmployeeID string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	Title      string    `gorm:"type:varchar(200);not null;default:''"          json:"title"`
	StartTime  time.Time `gorm:"not null"                                       json:"start_time"`
	EndTime    time.Time `gorm:"not null"                                       json:"end_time"`
	Status     string    `gorm:"type:varchar(20);not null;default:'planned'"    json:"status"` // planned | confirmed | cancelled
	BaseModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }
