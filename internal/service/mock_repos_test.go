package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamflow/backend/internal/model"
	"teamflow/backend/internal/repository"
)

// 内存版 Repository 实现，供服务层单元测试使用
// 行为与 GORM 实现对齐：未命中返回 gorm.ErrRecordNotFound，查询带租户过滤

// ── Company ──

type mockCompanyRepo struct {
	companies []*model.Company
}

func (m *mockCompanyRepo) Create(_ context.Context, company *model.Company) error {
	if company.CompanyID == "" {
		company.CompanyID = uuid.NewString()
	}
	m.companies = append(m.companies, company)
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	for _, c := range m.companies {
		if c.CompanyID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Department ──

type mockDepartmentRepo struct {
	departments []*model.Department
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		dept.DepartmentID = uuid.NewString()
	}
	m.departments = append(m.departments, dept)
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, companyID, id string) (*model.Department, error) {
	for _, d := range m.departments {
		if d.CompanyID == companyID && d.DepartmentID == id {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) ListByCompany(_ context.Context, companyID string) ([]model.Department, error) {
	var out []model.Department
	for _, d := range m.departments {
		if d.CompanyID == companyID {
			out = append(out, *d)
		}
	}
	return out, nil
}

// ── Employee ──

type mockEmployeeRepo struct {
	employees []*model.Employee
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = uuid.NewString()
	}
	m.employees = append(m.employees, employee)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, companyID, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.CompanyID == companyID && e.EmployeeID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if strings.EqualFold(e.Email, email) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByUserAndCompany(_ context.Context, userID, companyID string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.UserID == userID && e.CompanyID == companyID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) ListByCompany(_ context.Context, companyID, departmentID string, offset, limit int) ([]model.Employee, int64, error) {
	var matched []model.Employee
	for _, e := range m.employees {
		if e.CompanyID != companyID {
			continue
		}
		if departmentID != "" && (e.DepartmentID == nil || *e.DepartmentID != departmentID) {
			continue
		}
		matched = append(matched, *e)
	}
	total := int64(len(matched))
	matched = paginate(matched, offset, limit)
	return matched, total, nil
}

func (m *mockEmployeeRepo) ListAllByCompany(_ context.Context, companyID string) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range m.employees {
		if e.CompanyID == companyID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	for i, e := range m.employees {
		if e.EmployeeID == employee.EmployeeID {
			cp := *employee
			m.employees[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── AbsenceRequest ──

type mockAbsenceRepo struct {
	requests []*model.AbsenceRequest
	// stalePendingReads > 0 时 GetByID 返回 pending 状态的过期副本，
	// 用于复现两次审批并发读到同一待审批状态的场景
	stalePendingReads int
}

func (m *mockAbsenceRepo) Create(_ context.Context, req *model.AbsenceRequest) error {
	if req.AbsenceRequestID == "" {
		req.AbsenceRequestID = uuid.NewString()
	}
	req.CreatedAt = time.Now()
	cp := *req
	m.requests = append(m.requests, &cp)
	return nil
}

func (m *mockAbsenceRepo) GetByID(_ context.Context, companyID, id string) (*model.AbsenceRequest, error) {
	for _, r := range m.requests {
		if r.CompanyID == companyID && r.AbsenceRequestID == id {
			cp := *r
			if m.stalePendingReads > 0 {
				m.stalePendingReads--
				cp.Status = model.AbsencePending
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAbsenceRepo) List(_ context.Context, companyID string, status, absenceType string, offset, limit int) ([]model.AbsenceRequest, int64, error) {
	var matched []model.AbsenceRequest
	for _, r := range m.requests {
		if r.CompanyID != companyID {
			continue
		}
		if status != "" && string(r.Status) != status {
			continue
		}
		if absenceType != "" && string(r.Type) != absenceType {
			continue
		}
		matched = append(matched, *r)
	}
	total := int64(len(matched))
	matched = paginate(matched, offset, limit)
	return matched, total, nil
}

func (m *mockAbsenceRepo) ListByEmployee(_ context.Context, companyID, employeeID string) ([]model.AbsenceRequest, error) {
	var out []model.AbsenceRequest
	for _, r := range m.requests {
		if r.CompanyID == companyID && r.EmployeeID != nil && *r.EmployeeID == employeeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockAbsenceRepo) ListApprovedOverlapping(_ context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error) {
	var out []model.AbsenceRequest
	for _, r := range m.requests {
		if r.CompanyID != companyID || r.Status != model.AbsenceApproved {
			continue
		}
		if employeeID != "" && (r.EmployeeID == nil || *r.EmployeeID != employeeID) {
			continue
		}
		if r.StartDate.After(end) || r.EndDate.Before(start) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockAbsenceRepo) ListForPeriod(_ context.Context, companyID, employeeID string, start, end time.Time) ([]model.AbsenceRequest, error) {
	var out []model.AbsenceRequest
	for _, r := range m.requests {
		if r.CompanyID != companyID {
			continue
		}
		if employeeID != "" && (r.EmployeeID == nil || *r.EmployeeID != employeeID) {
			continue
		}
		if r.StartDate.Before(start) || !r.StartDate.Before(end) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockAbsenceRepo) Update(_ context.Context, req *model.AbsenceRequest) error {
	for i, r := range m.requests {
		if r.AbsenceRequestID == req.AbsenceRequestID {
			cp := *req
			m.requests[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── QuotaLedger ──

type mockQuotaLedgerRepo struct {
	ledgers []*model.QuotaLedger
}

func (m *mockQuotaLedgerRepo) Get(_ context.Context, companyID, employeeID string, year int, absenceType model.AbsenceType) (*model.QuotaLedger, error) {
	for _, l := range m.ledgers {
		if l.CompanyID == companyID && l.EmployeeID == employeeID && l.Year == year && l.Type == absenceType {
			cp := *l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockQuotaLedgerRepo) Upsert(_ context.Context, ledger *model.QuotaLedger) error {
	for i, l := range m.ledgers {
		if l.EmployeeID == ledger.EmployeeID && l.Year == ledger.Year && l.Type == ledger.Type {
			cp := *ledger
			m.ledgers[i] = &cp
			return nil
		}
	}
	if ledger.QuotaLedgerID == "" {
		ledger.QuotaLedgerID = uuid.NewString()
	}
	cp := *ledger
	m.ledgers = append(m.ledgers, &cp)
	return nil
}

func (m *mockQuotaLedgerRepo) ListByEmployee(_ context.Context, companyID, employeeID string, year int) ([]model.QuotaLedger, error) {
	var out []model.QuotaLedger
	for _, l := range m.ledgers {
		if l.CompanyID == companyID && l.EmployeeID == employeeID && l.Year == year {
			out = append(out, *l)
		}
	}
	return out, nil
}

// ── Shift ──

type mockShiftRepo struct {
	shifts []*model.Shift
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = uuid.NewString()
	}
	m.shifts = append(m.shifts, shift)
	return nil
}

func (m *mockShiftRepo) ListOverlapping(_ context.Context, companyID, employeeID string, start, end time.Time) ([]model.Shift, error) {
	var out []model.Shift
	for _, sh := range m.shifts {
		if sh.CompanyID != companyID || sh.EmployeeID != employeeID {
			continue
		}
		if sh.Status == "cancelled" {
			continue
		}
		if !sh.StartTime.Before(end) || !sh.EndTime.After(start) {
			continue
		}
		out = append(out, *sh)
	}
	return out, nil
}

// ── Notification ──

type mockNotificationRepo struct {
	notifications []*model.Notification
	createErr     error // 非 nil 时 Create 直接失败，用于验证尽力而为语义
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	cp := *notification
	m.notifications = append(m.notifications, &cp)
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(_ context.Context, companyID, recipientID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	var matched []model.Notification
	for _, n := range m.notifications {
		if n.CompanyID != companyID || n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		matched = append(matched, *n)
	}
	total := int64(len(matched))
	matched = paginate(matched, offset, limit)
	return matched, total, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, companyID, recipientID, id string) error {
	for _, n := range m.notifications {
		if n.CompanyID == companyID && n.RecipientID == recipientID && n.NotificationID == id {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── 邮件 ──

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer 记录外发邮件；sendErr 非 nil 时模拟 SMTP 故障
type recordingMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// ── 组装 ──

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// mockRepos 各内存实现的聚合，便于测试直查底层数据
type mockRepos struct {
	company      *mockCompanyRepo
	department   *mockDepartmentRepo
	employee     *mockEmployeeRepo
	absence      *mockAbsenceRepo
	quotaLedger  *mockQuotaLedgerRepo
	shift        *mockShiftRepo
	notification *mockNotificationRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		company:      &mockCompanyRepo{},
		department:   &mockDepartmentRepo{},
		employee:     &mockEmployeeRepo{},
		absence:      &mockAbsenceRepo{},
		quotaLedger:  &mockQuotaLedgerRepo{},
		shift:        &mockShiftRepo{},
		notification: &mockNotificationRepo{},
	}
	repo := &repository.Repository{
		Company:      mocks.company,
		Department:   mocks.department,
		Employee:     mocks.employee,
		Absence:      mocks.absence,
		QuotaLedger:  mocks.quotaLedger,
		Shift:        mocks.shift,
		Notification: mocks.notification,
	}
	return repo, mocks
}
