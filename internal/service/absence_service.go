package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teamflow/backend/config"
	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/model"
	"teamflow/backend/internal/repository"
)

var (
	ErrAbsenceNotFound       = errors.New("请假申请不存在")
	ErrAbsenceNotPending     = errors.New("请假申请不处于待审批状态")
	ErrAbsenceTerminal       = errors.New("请假申请已处于终态，不可操作")
	ErrInvalidAbsenceType    = errors.New("未知的请假类型")
	ErrInvalidDateFormat     = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrInvalidDateRange      = errors.New("结束日期不能早于开始日期")
	ErrEmployeeNotFound      = errors.New("员工不存在")
	ErrSubstituteNotFound    = errors.New("代理人不存在")
	ErrSubstituteIsRequester = errors.New("代理人不能是申请人本人")
	ErrNotRequestOwner       = errors.New("只能操作本人的请假申请")
	ErrNotSubstitute         = errors.New("只有被指定的代理人才能确认")
)

// AbsenceService 请假工作流服务接口
// 所有方法显式接收 companyID，租户隔离不依赖任何全局状态
type AbsenceService interface {
	// Submit 提交请假申请
	// employeeID 为 nil 表示租户管理员无员工档案的降级路径，仅记录 requesterLabel
	Submit(ctx context.Context, companyID string, employeeID *string, requesterLabel string, q *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error)
	Get(ctx context.Context, companyID, id string) (*dto.AbsenceResponse, error)
	List(ctx context.Context, companyID string, q *dto.AbsenceListRequest) ([]dto.AbsenceResponse, int64, error)
	ListMine(ctx context.Context, companyID, employeeID string) ([]dto.AbsenceResponse, error)
	// Approve 批准申请并按类型结转配额副作用
	Approve(ctx context.Context, companyID, id, approverID string) (*dto.AbsenceResponse, error)
	Reject(ctx context.Context, companyID, id, approverID string, q *dto.RejectAbsenceRequest) (*dto.AbsenceResponse, error)
	// Cancel 取消申请；已批准单据取消后不回冲配额
	Cancel(ctx context.Context, companyID, id, callerEmployeeID, callerRole string, q *dto.CancelAbsenceRequest) (*dto.AbsenceResponse, error)
	AssignSubstitute(ctx context.Context, companyID, id, callerEmployeeID, callerRole string, q *dto.AssignSubstituteRequest) (*dto.AbsenceResponse, error)
	ConfirmSubstitute(ctx context.Context, companyID, id, callerEmployeeID string) (*dto.AbsenceResponse, error)
	CheckShiftConflicts(ctx context.Context, companyID, id string) (*dto.ShiftConflictResponse, error)
	GetStatistics(ctx context.Context, companyID string, q *dto.StatisticsRequest) (*dto.AbsenceStatisticsResponse, error)
	// GetAvailableSubstitutes 查询指定区间内无已批准请假的本公司员工
	GetAvailableSubstitutes(ctx context.Context, companyID, requesterEmployeeID string, q *dto.SubstituteQueryRequest) ([]dto.SubstituteCandidate, error)
}

// absenceService AbsenceService 实现
type absenceService struct {
	cfg      *config.AbsenceConfig
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewAbsenceService 创建请假工作流服务
func NewAbsenceService(cfg *config.AbsenceConfig, repo *repository.Repository, notifier NotificationService, logger *zap.Logger) AbsenceService {
	return &absenceService{cfg: cfg, repo: repo, notifier: notifier, logger: logger}
}

// ════ 提交与查询 ════

func (s *absenceService) Submit(ctx context.Context, companyID string, employeeID *string, requesterLabel string, q *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error) {
	absenceType := model.AbsenceType(q.Type)
	if !absenceType.Valid() {
		return nil, ErrInvalidAbsenceType
	}

	start, end, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	// 有员工档案时以档案姓名为准，降级路径保留调用方给的标签
	if employeeID != nil {
		employee, err := s.repo.Employee.GetByID(ctx, companyID, *employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEmployeeNotFound
			}
			s.logger.Error("查询员工档案失败", zap.String("employee_id", *employeeID), zap.Error(err))
			return nil, fmt.Errorf("查询员工档案失败: %w", err)
		}
		requesterLabel = employee.Name
	}

	req := &model.AbsenceRequest{
		CompanyID:      companyID,
		EmployeeID:     employeeID,
		RequesterLabel: requesterLabel,
		Type:           absenceType,
		Status:         model.AbsencePending,
		StartDate:      start,
		EndDate:        end,
		Reason:         q.Reason,
	}
	if err := s.repo.Absence.Create(ctx, req); err != nil {
		s.logger.Error("创建请假申请失败", zap.Error(err))
		return nil, fmt.Errorf("创建请假申请失败: %w", err)
	}

	s.notifier.NotifyAbsenceSubmitted(ctx, companyID, req)

	return s.toResponse(req), nil
}

func (s *absenceService) Get(ctx context.Context, companyID, id string) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(req), nil
}

func (s *absenceService) List(ctx context.Context, companyID string, q *dto.AbsenceListRequest) ([]dto.AbsenceResponse, int64, error) {
	reqs, total, err := s.repo.Absence.List(ctx, companyID, q.Status, q.Type, q.GetOffset(), q.GetPageSize())
	if err != nil {
		s.logger.Error("查询请假列表失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询请假列表失败: %w", err)
	}

	resp := make([]dto.AbsenceResponse, 0, len(reqs))
	for i := range reqs {
		resp = append(resp, *s.toResponse(&reqs[i]))
	}
	return resp, total, nil
}

func (s *absenceService) ListMine(ctx context.Context, companyID, employeeID string) ([]dto.AbsenceResponse, error) {
	reqs, err := s.repo.Absence.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("查询本人请假列表失败", zap.Error(err))
		return nil, fmt.Errorf("查询本人请假列表失败: %w", err)
	}

	resp := make([]dto.AbsenceResponse, 0, len(reqs))
	for i := range reqs {
		resp = append(resp, *s.toResponse(&reqs[i]))
	}
	return resp, nil
}

// ════ 审批 ════

func (s *absenceService) Approve(ctx context.Context, companyID, id, approverID string) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.AbsencePending {
		return nil, ErrAbsenceNotPending
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidAbsenceType
	}

	now := time.Now()
	req.Status = model.AbsenceApproved
	req.ApprovedAt = &now
	if approverID != "" {
		req.ApprovedBy = &approverID
	}
	if err := s.repo.Absence.Update(ctx, req); err != nil {
		s.logger.Error("更新请假状态失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("批准请假申请失败: %w", err)
	}

	if err := s.applyApprovalEffects(ctx, companyID, req); err != nil {
		// 状态已落库；配额结转失败单独上报，不回滚审批结果
		s.logger.Error("配额结转失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, err
	}

	s.notifier.NotifyAbsenceDecided(ctx, companyID, req)

	return s.toResponse(req), nil
}

// applyApprovalEffects 按请假类型结转配额
// 类型划分为穷举分支：新增类型必须在此显式归类，否则审批直接报错
func (s *absenceService) applyApprovalEffects(ctx context.Context, companyID string, req *model.AbsenceRequest) error {
	if req.EmployeeID == nil {
		s.logger.Info("降级申请无员工档案，跳过配额结转",
			zap.String("absence_request_id", req.AbsenceRequestID))
		return nil
	}

	days := WorkingDays(req.StartDate, req.EndDate)
	year := req.StartDate.Year()

	switch req.Type {
	case model.AbsenceVacation, model.AbsenceSpecialVacation:
		// 年假族：扣减员工剩余额度并登记台账
		if err := s.debitEntitlement(ctx, companyID, *req.EmployeeID, days); err != nil {
			return err
		}
		return s.recordLedgerUsage(ctx, companyID, *req.EmployeeID, year, req.Type, days)
	case model.AbsenceSickLeave:
		// 病假只登记台账，绝不动用年假额度
		return s.recordLedgerUsage(ctx, companyID, *req.EmployeeID, year, req.Type, days)
	case model.AbsenceHomeoffice, model.AbsenceBusinessTrip:
		// 不占用配额，额外告知主管
		s.notifier.NotifySupervisorOfApproval(ctx, companyID, req)
		return nil
	case model.AbsenceParental, model.AbsenceEducational, model.AbsenceOther:
		// 不占用配额
		return nil
	default:
		return ErrInvalidAbsenceType
	}
}

// debitEntitlement 扣减员工剩余年假天数，下限为 0
func (s *absenceService) debitEntitlement(ctx context.Context, companyID, employeeID string, days int) error {
	employee, err := s.repo.Employee.GetByID(ctx, companyID, employeeID)
	if err != nil {
		return fmt.Errorf("查询员工档案失败: %w", err)
	}

	remaining := employee.RemainingVacationDays - days
	if remaining < 0 {
		remaining = 0
	}
	employee.RemainingVacationDays = remaining

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		return fmt.Errorf("更新员工剩余年假失败: %w", err)
	}
	return nil
}

// recordLedgerUsage 在台账上累加已用天数；缺行时按类型初始化额度
func (s *absenceService) recordLedgerUsage(ctx context.Context, companyID, employeeID string, year int, absenceType model.AbsenceType, days int) error {
	ledger, err := s.repo.QuotaLedger.Get(ctx, companyID, employeeID, year, absenceType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("查询配额台账失败: %w", err)
		}
		totalDays := 0
		if absenceType == model.AbsenceVacation {
			totalDays = s.cfg.DefaultVacationDays
		}
		ledger = &model.QuotaLedger{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Year:       year,
			Type:       absenceType,
			TotalDays:  totalDays,
		}
	}

	ledger.UsedDays += days
	if err := s.repo.QuotaLedger.Upsert(ctx, ledger); err != nil {
		return fmt.Errorf("更新配额台账失败: %w", err)
	}
	return nil
}

func (s *absenceService) Reject(ctx context.Context, companyID, id, approverID string, q *dto.RejectAbsenceRequest) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.AbsencePending {
		return nil, ErrAbsenceNotPending
	}

	now := time.Now()
	req.Status = model.AbsenceRejected
	req.RejectedAt = &now
	req.RejectedReason = q.Reason
	if approverID != "" {
		req.ApprovedBy = &approverID
	}
	if err := s.repo.Absence.Update(ctx, req); err != nil {
		s.logger.Error("更新请假状态失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("驳回请假申请失败: %w", err)
	}

	s.notifier.NotifyAbsenceDecided(ctx, companyID, req)

	return s.toResponse(req), nil
}

func (s *absenceService) Cancel(ctx context.Context, companyID, id, callerEmployeeID, callerRole string, q *dto.CancelAbsenceRequest) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, ErrAbsenceTerminal
	}
	if err := checkOwnership(req, callerEmployeeID, callerRole); err != nil {
		return nil, err
	}

	now := time.Now()
	req.Status = model.AbsenceCancelled
	req.CancelledAt = &now
	req.CancelledReason = q.Reason
	// 已批准单据取消后不回冲配额：差额留给年度对账处理
	if err := s.repo.Absence.Update(ctx, req); err != nil {
		s.logger.Error("更新请假状态失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("取消请假申请失败: %w", err)
	}

	return s.toResponse(req), nil
}

// ════ 代理人 ════

func (s *absenceService) AssignSubstitute(ctx context.Context, companyID, id, callerEmployeeID, callerRole string, q *dto.AssignSubstituteRequest) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, ErrAbsenceTerminal
	}
	if err := checkOwnership(req, callerEmployeeID, callerRole); err != nil {
		return nil, err
	}
	if req.EmployeeID != nil && *req.EmployeeID == q.SubstituteID {
		return nil, ErrSubstituteIsRequester
	}

	// 带 companyID 查询即保证代理人在同一租户内
	if _, err := s.repo.Employee.GetByID(ctx, companyID, q.SubstituteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubstituteNotFound
		}
		s.logger.Error("查询代理人档案失败", zap.String("substitute_id", q.SubstituteID), zap.Error(err))
		return nil, fmt.Errorf("查询代理人档案失败: %w", err)
	}

	req.SubstituteID = &q.SubstituteID
	req.SubstituteConfirmed = false
	if err := s.repo.Absence.Update(ctx, req); err != nil {
		s.logger.Error("指定代理人失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("指定代理人失败: %w", err)
	}

	s.notifier.NotifySubstituteAssigned(ctx, companyID, req)

	return s.toResponse(req), nil
}

func (s *absenceService) ConfirmSubstitute(ctx context.Context, companyID, id, callerEmployeeID string) (*dto.AbsenceResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.SubstituteID == nil || *req.SubstituteID != callerEmployeeID {
		return nil, ErrNotSubstitute
	}

	req.SubstituteConfirmed = true
	if err := s.repo.Absence.Update(ctx, req); err != nil {
		s.logger.Error("确认代理失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("确认代理失败: %w", err)
	}

	return s.toResponse(req), nil
}

// ════ 冲突检测与统计 ════

func (s *absenceService) CheckShiftConflicts(ctx context.Context, companyID, id string) (*dto.ShiftConflictResponse, error) {
	req, err := s.getRequest(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ShiftConflictResponse{Conflicts: []dto.ShiftConflict{}}
	if req.EmployeeID == nil {
		return resp, nil
	}

	// 日期区间转为 [start 00:00, end+1 00:00) 的时间窗口
	windowStart := truncateToDay(req.StartDate)
	windowEnd := truncateToDay(req.EndDate).AddDate(0, 0, 1)

	shifts, err := s.repo.Shift.ListOverlapping(ctx, companyID, *req.EmployeeID, windowStart, windowEnd)
	if err != nil {
		s.logger.Error("查询冲突班次失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("查询冲突班次失败: %w", err)
	}

	for i := range shifts {
		resp.Conflicts = append(resp.Conflicts, dto.ShiftConflict{
			ShiftID:   shifts[i].ShiftID,
			Title:     shifts[i].Title,
			StartTime: shifts[i].StartTime.Format(time.RFC3339),
			EndTime:   shifts[i].EndTime.Format(time.RFC3339),
			Status:    shifts[i].Status,
		})
	}
	resp.HasConflict = len(resp.Conflicts) > 0
	return resp, nil
}

func (s *absenceService) GetStatistics(ctx context.Context, companyID string, q *dto.StatisticsRequest) (*dto.AbsenceStatisticsResponse, error) {
	year := q.Year
	if year == 0 {
		year = time.Now().Year()
	}
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	reqs, err := s.repo.Absence.ListForPeriod(ctx, companyID, q.EmployeeID, yearStart, yearEnd)
	if err != nil {
		s.logger.Error("查询统计数据失败", zap.Error(err))
		return nil, fmt.Errorf("查询统计数据失败: %w", err)
	}

	resp := &dto.AbsenceStatisticsResponse{
		TotalRequests: len(reqs),
		ByType:        make(map[string]int),
		ByMonth:       make(map[string]int),
		ByStatus:      make(map[string]int),
	}
	for i := range reqs {
		r := &reqs[i]
		resp.ByType[string(r.Type)]++
		resp.ByMonth[r.StartDate.Format("2006-01")]++
		resp.ByStatus[string(r.Status)]++
		// 缺勤总天数只统计已批准的单据
		if r.Status == model.AbsenceApproved {
			resp.TotalDays += WorkingDays(r.StartDate, r.EndDate)
		}
	}

	resp.VacationQuota = dto.QuotaResponse{Year: year}
	if q.EmployeeID != "" {
		quota, err := s.vacationQuota(ctx, companyID, q.EmployeeID, year)
		if err != nil {
			return nil, err
		}
		resp.VacationQuota = *quota
	}

	return resp, nil
}

// vacationQuota 读取年假台账；缺行时按配置缺省额度返回
func (s *absenceService) vacationQuota(ctx context.Context, companyID, employeeID string, year int) (*dto.QuotaResponse, error) {
	ledger, err := s.repo.QuotaLedger.Get(ctx, companyID, employeeID, year, model.AbsenceVacation)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.QuotaResponse{
				Year:          year,
				TotalDays:     s.cfg.DefaultVacationDays,
				RemainingDays: s.cfg.DefaultVacationDays,
			}, nil
		}
		s.logger.Error("查询年假台账失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, fmt.Errorf("查询年假台账失败: %w", err)
	}

	remaining := ledger.TotalDays - ledger.UsedDays - ledger.PlannedDays
	if remaining < 0 {
		remaining = 0
	}
	return &dto.QuotaResponse{
		Year:          year,
		TotalDays:     ledger.TotalDays,
		UsedDays:      ledger.UsedDays,
		PlannedDays:   ledger.PlannedDays,
		RemainingDays: remaining,
	}, nil
}

func (s *absenceService) GetAvailableSubstitutes(ctx context.Context, companyID, requesterEmployeeID string, q *dto.SubstituteQueryRequest) ([]dto.SubstituteCandidate, error) {
	start, end, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.repo.Absence.ListApprovedOverlapping(ctx, companyID, "", start, end)
	if err != nil {
		s.logger.Error("查询期间内已批准请假失败", zap.Error(err))
		return nil, fmt.Errorf("查询可用代理人失败: %w", err)
	}
	absent := make(map[string]struct{}, len(overlapping))
	for i := range overlapping {
		if overlapping[i].EmployeeID != nil {
			absent[*overlapping[i].EmployeeID] = struct{}{}
		}
	}

	employees, err := s.repo.Employee.ListAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("查询公司员工失败", zap.Error(err))
		return nil, fmt.Errorf("查询可用代理人失败: %w", err)
	}

	candidates := make([]dto.SubstituteCandidate, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		if e.EmployeeID == requesterEmployeeID {
			continue
		}
		if _, ok := absent[e.EmployeeID]; ok {
			continue
		}
		candidate := dto.SubstituteCandidate{
			ID:    e.EmployeeID,
			Name:  e.Name,
			Email: e.Email,
		}
		if e.Department != nil {
			candidate.Department = &dto.DepartmentBrief{
				ID:   e.Department.DepartmentID,
				Name: e.Department.Name,
			}
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// ════ 内部辅助 ════

func (s *absenceService) getRequest(ctx context.Context, companyID, id string) (*model.AbsenceRequest, error) {
	req, err := s.repo.Absence.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsenceNotFound
		}
		s.logger.Error("查询请假申请失败", zap.String("absence_request_id", id), zap.Error(err))
		return nil, fmt.Errorf("查询请假申请失败: %w", err)
	}
	return req, nil
}

// checkOwnership 普通员工只能操作本人的申请；manager/admin 不受限
func checkOwnership(req *model.AbsenceRequest, callerEmployeeID, callerRole string) error {
	if callerRole != "employee" {
		return nil
	}
	if req.EmployeeID == nil || *req.EmployeeID != callerEmployeeID {
		return ErrNotRequestOwner
	}
	return nil
}

// parseDateRange 解析并校验 YYYY-MM-DD 日期区间
func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

// toResponse 模型转响应
func (s *absenceService) toResponse(req *model.AbsenceRequest) *dto.AbsenceResponse {
	resp := &dto.AbsenceResponse{
		ID:                  req.AbsenceRequestID,
		CompanyID:           req.CompanyID,
		EmployeeID:          req.EmployeeID,
		RequesterLabel:      req.RequesterLabel,
		Type:                string(req.Type),
		TypeLabel:           req.Type.Label(),
		Status:              string(req.Status),
		StartDate:           req.StartDate.Format("2006-01-02"),
		EndDate:             req.EndDate.Format("2006-01-02"),
		WorkingDays:         WorkingDays(req.StartDate, req.EndDate),
		Reason:              req.Reason,
		SubstituteID:        req.SubstituteID,
		SubstituteConfirmed: req.SubstituteConfirmed,
		ApprovedBy:          req.ApprovedBy,
		RejectedReason:      req.RejectedReason,
		CancelledReason:     req.CancelledReason,
		CreatedAt:           req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if req.ApprovedAt != nil {
		t := req.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &t
	}
	if req.RejectedAt != nil {
		t := req.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &t
	}
	if req.CancelledAt != nil {
		t := req.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &t
	}
	if req.Employee != nil {
		resp.Employee = toEmployeeBrief(req.Employee)
	}
	if req.Substitute != nil {
		resp.Substitute = toEmployeeBrief(req.Substitute)
	}
	return resp
}

// toEmployeeBrief 员工简要信息
func toEmployeeBrief(e *model.Employee) *dto.EmployeeBrief {
	brief := &dto.EmployeeBrief{
		ID:    e.EmployeeID,
		Name:  e.Name,
		Email: e.Email,
	}
	if e.Department != nil {
		brief.Department = &dto.DepartmentBrief{
			ID:   e.Department.DepartmentID,
			Name: e.Department.Name,
		}
	}
	return brief
}
