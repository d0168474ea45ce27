package model

import "time"

// AbsenceType 请假类型
type AbsenceType string

const (
	AbsenceVacation        AbsenceType = "vacation"
	AbsenceSpecialVacation AbsenceType = "special_vacation"
	AbsenceSickLeave       AbsenceType = "sick_leave"
	AbsenceHomeoffice      AbsenceType = "homeoffice"
	AbsenceBusinessTrip    AbsenceType = "business_trip"
	AbsenceParental        AbsenceType = "parental"
	AbsenceEducational     AbsenceType = "educational"
	AbsenceOther           AbsenceType = "other"
)

// Valid 判断请假类型是否为已知枚举值
func (t AbsenceType) Valid() bool {
	switch t {
	case AbsenceVacation, AbsenceSpecialVacation, AbsenceSickLeave,
		AbsenceHomeoffice, AbsenceBusinessTrip, AbsenceParental,
		AbsenceEducational, AbsenceOther:
		return true
	}
	return false
}

// Label 请假类型的展示名称（通知文案用）
func (t AbsenceType) Label() string {
	switch t {
	case AbsenceVacation:
		return "年假"
	case AbsenceSpecialVacation:
		return "特别假"
	case AbsenceSickLeave:
		return "病假"
	case AbsenceHomeoffice:
		return "居家办公"
	case AbsenceBusinessTrip:
		return "出差"
	case AbsenceParental:
		return "育儿假"
	case AbsenceEducational:
		return "进修假"
	case AbsenceOther:
		return "其他"
	}
	return string(t)
}

// AbsenceStatus 请假单状态
type AbsenceStatus string

const (
	AbsencePending   AbsenceStatus = "pending"
	AbsenceApproved  AbsenceStatus = "approved"
	AbsenceRejected  AbsenceStatus = "rejected"
	AbsenceCancelled AbsenceStatus = "cancelled"
	AbsenceArchived  AbsenceStatus = "archived"
)

// Terminal 判断状态是否为终态（终态不可再取消）
func (s AbsenceStatus) Terminal() bool {
	return s == AbsenceCancelled || s == AbsenceArchived
}

// AbsenceRequest 请假申请表 — 对应 absence_requests
// EmployeeID 可为空：租户管理员在无员工档案的降级路径下提交时，
// 仅记录 RequesterLabel 作为合成身份标签
type AbsenceRequest struct {
	AbsenceRequestID    string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"absence_request_id"`
	CompanyID           string        `gorm:"type:uuid;not null"                             json:"company_id"`
	EmployeeID          *string       `gorm:"type:uuid"                                      json:"employee_id,omitempty"`
	RequesterLabel      string        `gorm:"type:varchar(200);not null;default:''"          json:"requester_label"`
	Type                AbsenceType   `gorm:"type:varchar(30);not null"                      json:"type"`
	Status              AbsenceStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	StartDate           time.Time     `gorm:"type:date;not null"                             json:"start_date"`
	EndDate             time.Time     `gorm:"type:date;not null"                             json:"end_date"`
	Reason              string        `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	SubstituteID        *string       `gorm:"type:uuid"                                      json:"substitute_id,omitempty"`
	SubstituteConfirmed bool          `gorm:"not null;default:false"                         json:"substitute_confirmed"`
	ApprovedBy          *string       `gorm:"type:uuid"                                      json:"approved_by,omitempty"`
	ApprovedAt          *time.Time    `json:"approved_at,omitempty"`
	RejectedAt          *time.Time    `json:"rejected_at,omitempty"`
	RejectedReason      string        `gorm:"type:varchar(500)"                              json:"rejected_reason,omitempty"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
	CancelledReason     string        `gorm:"type:varchar(500)"                              json:"cancelled_reason,omitempty"`
	SoftDeleteModel

	// 关联
	Employee   *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"   json:"employee,omitempty"`
	Substitute *Employee `gorm:"foreignKey:SubstituteID;references:EmployeeID" json:"substitute,omitempty"`
}

// TableName 指定表名
func (AbsenceRequest) TableName() string { return "absence_requests" }
