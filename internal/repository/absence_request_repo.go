package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"teamflow/backend/internal/model"
)

// AbsenceRequestRepository 请假申请数据访问接口
type AbsenceRequestRepository interface {
	Create(ctx context.Context, req *model.AbsenceRequest) error
	GetByID(ctx context.Context, companyID, id string) (*model.AbsenceRequest, error)
	List(ctx context.Context, companyID string, status, absenceType string, offset, limit int) ([]model.AbsenceRequest, int64, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]model.AbsenceRequest, error)
	// ListApprovedOverlapping 查询与 [start, end] 有交集的已批准申请
	// employeeID 为空时返回全公司范围
	ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error)
	// ListForPeriod 查询开始日期落在 [start, end) 内的全部申请（统计与导出用）
	// employeeID 为空时返回全公司范围
	ListForPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error)
	Update(ctx context.Context, req *model.AbsenceRequest) error
}

// absenceRequestRepo AbsenceRequestRepository 的 GORM 实现
type absenceRequestRepo struct {
	db *gorm.DB
}

// NewAbsenceRequestRepo 创建 AbsenceRequestRepository 实例
func NewAbsenceRequestRepo(db *gorm.DB) AbsenceRequestRepository {
	return &absenceRequestRepo{db: db}
}

func (r *absenceRequestRepo) Create(ctx context.Context, req *model.AbsenceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *absenceRequestRepo) GetByID(ctx context.Context, companyID, id string) (*model.AbsenceRequest, error) {
	var req model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.Department").
		Preload("Substitute").
		Where("company_id = ? AND absence_request_id = ?", companyID, id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *absenceRequestRepo) List(ctx context.Context, companyID string, status, absenceType string, offset, limit int) ([]model.AbsenceRequest, int64, error) {
	var reqs []model.AbsenceRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AbsenceRequest{}).Where("company_id = ?", companyID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if absenceType != "" {
		db = db.Where("type = ?", absenceType)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Employee").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *absenceRequestRepo) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Order("start_date DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *absenceRequestRepo) ListApprovedOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	db := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, model.AbsenceApproved).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	if err := db.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *absenceRequestRepo) ListForPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Where("company_id = ?", companyID).
		Where("start_date >= ? AND start_date < ?", start, end)
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	if err := db.Order("start_date ASC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *absenceRequestRepo) Update(ctx context.Context, req *model.AbsenceRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
