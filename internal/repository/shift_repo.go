package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"teamflow/backend/internal/model"
)

// ShiftRepository 排班数据访问接口（请假模块只读引用）
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	// ListOverlapping 查询员工与 [start, end) 有交集且未取消的班次
	ListOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.Shift, error)
}

// shiftRepo ShiftRepository 的 GORM 实现
type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) ListOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Where("status <> ?", "cancelled").
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}
