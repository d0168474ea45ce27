package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamflow/backend/internal/model"
)

// QuotaLedgerRepository 假期配额台账数据访问接口
type QuotaLedgerRepository interface {
	Get(ctx context.Context, companyID, employeeID string, year int, absenceType model.AbsenceType) (*model.QuotaLedger, error)
	// Upsert 按 (employee_id, year, type) 唯一键插入或更新
	Upsert(ctx context.Context, ledger *model.QuotaLedger) error
	ListByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]model.QuotaLedger, error)
}

// quotaLedgerRepo QuotaLedgerRepository 的 GORM 实现
type quotaLedgerRepo struct {
	db *gorm.DB
}

// NewQuotaLedgerRepo 创建 QuotaLedgerRepository 实例
func NewQuotaLedgerRepo(db *gorm.DB) QuotaLedgerRepository {
	return &quotaLedgerRepo{db: db}
}

func (r *quotaLedgerRepo) Get(ctx context.Context, companyID, employeeID string, year int, absenceType model.AbsenceType) (*model.QuotaLedger, error) {
	var ledger model.QuotaLedger
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ? AND year = ? AND type = ?",
			companyID, employeeID, year, absenceType).
		First(&ledger).Error
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (r *quotaLedgerRepo) Upsert(ctx context.Context, ledger *model.QuotaLedger) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_days", "used_days", "planned_days", "updated_at",
			}),
		}).
		Create(ledger).Error
}

func (r *quotaLedgerRepo) ListByEmployee(ctx context.Context, companyID, employeeID string, year int) ([]model.QuotaLedger, error) {
	var ledgers []model.QuotaLedger
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND employee_id = ? AND year = ?", companyID, employeeID, year).
		Find(&ledgers).Error
	if err != nil {
		return nil, err
	}
	return ledgers, nil
}
