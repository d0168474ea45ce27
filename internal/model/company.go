package model

// Company 公司（租户）表 — 对应 companies
// 所有业务数据按 company_id 分区，跨租户访问一律非法
type Company struct {
	CompanyID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"company_id"`
	Name      string `gorm:"type:varchar(200);not null"                     json:"name"`
	BaseModel
}

// TableName 指定表名
func (Company) TableName() string { return "companies" }
