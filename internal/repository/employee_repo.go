package repository

import (
	"context"

	"gorm.io/gorm"

	"teamflow/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
// 所有查询必须显式携带 companyID；禁止提供不带租户过滤的按用户查询，
// 防止同一用户在多租户下匹配到他司档案
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, companyID, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	GetByUserAndCompany(ctx context.Context, userID, companyID string) (*model.Employee, error)
	// ListByCompany 分页查询公司员工；departmentID 为空时不过滤部门
	ListByCompany(ctx context.Context, companyID, departmentID string, offset, limit int) ([]model.Employee, int64, error)
	// ListAllByCompany 不分页取全公司员工，供候选人筛选等内部全量场景使用
	ListAllByCompany(ctx context.Context, companyID string) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, companyID, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("company_id = ? AND employee_id = ?", companyID, id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail 仅供登录使用：登录前尚无租户上下文
func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByUserAndCompany(ctx context.Context, userID, companyID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) ListByCompany(ctx context.Context, companyID, departmentID string, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{}).Where("company_id = ?", companyID)
	if departmentID != "" {
		db = db.Where("department_id = ?", departmentID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Department").
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepo) ListAllByCompany(ctx context.Context, companyID string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}
