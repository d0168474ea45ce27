package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/model"
	"teamflow/backend/internal/repository"
	"teamflow/backend/pkg/mailer"
)

var (
	ErrNotificationNotFound = errors.New("通知不存在")
)

// 通知类型常量
const (
	NotifyAbsenceSubmitted   = "absence_submitted"
	NotifyAbsenceDecided     = "absence_decided"
	NotifySubstituteAssigned = "substitute_assigned"
)

// NotificationService 通知服务接口
// 所有 Notify* 方法是尽力而为的旁路：内部记录失败日志，永不返回错误，
// 绝不阻塞或回滚触发通知的业务状态变更
type NotificationService interface {
	// NotifyAbsenceSubmitted 请假提交后通知申请人的直属主管
	// 申请人无主管（或降级路径无员工档案）时仅记录日志，不算失败
	NotifyAbsenceSubmitted(ctx context.Context, companyID string, req *model.AbsenceRequest)
	// NotifyAbsenceDecided 审批结果（批准/驳回）通知申请人
	NotifyAbsenceDecided(ctx context.Context, companyID string, req *model.AbsenceRequest)
	// NotifySupervisorOfApproval 居家办公/出差批准后额外告知直属主管
	NotifySupervisorOfApproval(ctx context.Context, companyID string, req *model.AbsenceRequest)
	// NotifySubstituteAssigned 被指定为代理人时通知代理人
	NotifySubstituteAssigned(ctx context.Context, companyID string, req *model.AbsenceRequest)

	List(ctx context.Context, companyID, recipientID string, q *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error)
	MarkRead(ctx context.Context, companyID, recipientID, id string) error
}

// notificationService NotificationService 实现
type notificationService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	logger *zap.Logger
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo *repository.Repository, m mailer.Mailer, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, mailer: m, logger: logger}
}

// ════ 业务事件通知 ════

func (s *notificationService) NotifyAbsenceSubmitted(ctx context.Context, companyID string, req *model.AbsenceRequest) {
	employee, manager, ok := s.resolveManager(ctx, companyID, req)
	if !ok {
		return
	}

	title := fmt.Sprintf("%s 提交了%s申请", employee.Name, req.Type.Label())
	content := fmt.Sprintf("%s 申请 %s 至 %s 的%s，请及时审批。",
		employee.Name,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"),
		req.Type.Label())

	s.dispatch(ctx, companyID, manager, NotifyAbsenceSubmitted, title, content, req.AbsenceRequestID)
}

func (s *notificationService) NotifySupervisorOfApproval(ctx context.Context, companyID string, req *model.AbsenceRequest) {
	employee, manager, ok := s.resolveManager(ctx, companyID, req)
	if !ok {
		return
	}

	title := fmt.Sprintf("%s 的%s已批准", employee.Name, req.Type.Label())
	content := fmt.Sprintf("%s 将于 %s 至 %s %s。",
		employee.Name,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"),
		req.Type.Label())

	s.dispatch(ctx, companyID, manager, NotifyAbsenceDecided, title, content, req.AbsenceRequestID)
}

// resolveManager 解析申请人及其直属主管；降级申请或无主管时返回 false（记录日志，不算失败）
func (s *notificationService) resolveManager(ctx context.Context, companyID string, req *model.AbsenceRequest) (*model.Employee, *model.Employee, bool) {
	if req.EmployeeID == nil {
		s.logger.Info("申请无员工档案，跳过主管通知",
			zap.String("absence_request_id", req.AbsenceRequestID))
		return nil, nil, false
	}

	employee, err := s.repo.Employee.GetByID(ctx, companyID, *req.EmployeeID)
	if err != nil {
		s.logger.Warn("通知主管失败：查询申请人档案出错",
			zap.String("absence_request_id", req.AbsenceRequestID),
			zap.Error(err))
		return nil, nil, false
	}
	if employee.ManagerID == nil {
		s.logger.Info("申请人无直属主管，跳过通知",
			zap.String("employee_id", employee.EmployeeID))
		return nil, nil, false
	}

	manager, err := s.repo.Employee.GetByID(ctx, companyID, *employee.ManagerID)
	if err != nil {
		s.logger.Warn("通知主管失败：查询主管档案出错",
			zap.String("manager_id", *employee.ManagerID),
			zap.Error(err))
		return nil, nil, false
	}
	return employee, manager, true
}

func (s *notificationService) NotifyAbsenceDecided(ctx context.Context, companyID string, req *model.AbsenceRequest) {
	if req.EmployeeID == nil {
		return
	}

	recipient, err := s.repo.Employee.GetByID(ctx, companyID, *req.EmployeeID)
	if err != nil {
		s.logger.Warn("通知申请人失败：查询档案出错",
			zap.String("absence_request_id", req.AbsenceRequestID),
			zap.Error(err))
		return
	}

	var title, content string
	switch req.Status {
	case model.AbsenceApproved:
		title = fmt.Sprintf("你的%s申请已批准", req.Type.Label())
		content = fmt.Sprintf("%s 至 %s 的%s申请已批准。",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), req.Type.Label())
	case model.AbsenceRejected:
		title = fmt.Sprintf("你的%s申请被驳回", req.Type.Label())
		content = fmt.Sprintf("%s 至 %s 的%s申请被驳回。",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), req.Type.Label())
		if req.RejectedReason != "" {
			content += "原因：" + req.RejectedReason
		}
	default:
		return
	}

	s.dispatch(ctx, companyID, recipient, NotifyAbsenceDecided, title, content, req.AbsenceRequestID)
}

func (s *notificationService) NotifySubstituteAssigned(ctx context.Context, companyID string, req *model.AbsenceRequest) {
	if req.SubstituteID == nil {
		return
	}

	substitute, err := s.repo.Employee.GetByID(ctx, companyID, *req.SubstituteID)
	if err != nil {
		s.logger.Warn("通知代理人失败：查询档案出错",
			zap.String("substitute_id", *req.SubstituteID),
			zap.Error(err))
		return
	}

	title := "你被指定为请假代理人"
	content := fmt.Sprintf("%s 请你在 %s 至 %s 期间代理其工作，请确认。",
		req.RequesterLabel,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"))

	s.dispatch(ctx, companyID, substitute, NotifySubstituteAssigned, title, content, req.AbsenceRequestID)
}

// dispatch 写站内信并尽力外发邮件；两者任一失败只记日志
func (s *notificationService) dispatch(ctx context.Context, companyID string, recipient *model.Employee, ntype, title, content, absenceRequestID string) {
	relatedType := "absence_request"
	notification := &model.Notification{
		CompanyID:   companyID,
		RecipientID: recipient.EmployeeID,
		Type:        ntype,
		Title:       title,
		Content:     content,
		RelatedType: &relatedType,
		RelatedID:   &absenceRequestID,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("写入站内通知失败",
			zap.String("recipient_id", recipient.EmployeeID),
			zap.String("type", ntype),
			zap.Error(err))
	}

	if err := s.mailer.Send(recipient.Email, title, content); err != nil {
		s.logger.Warn("通知邮件发送失败",
			zap.String("recipient_id", recipient.EmployeeID),
			zap.Error(err))
	}
}

// ════ 收件箱查询 ════

func (s *notificationService) List(ctx context.Context, companyID, recipientID string, q *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error) {
	notifications, total, err := s.repo.Notification.ListByRecipient(
		ctx, companyID, recipientID, q.UnreadOnly, q.GetOffset(), q.GetPageSize())
	if err != nil {
		s.logger.Error("查询通知列表失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询通知列表失败: %w", err)
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		resp = append(resp, toNotificationResponse(&notifications[i]))
	}
	return resp, total, nil
}

func (s *notificationService) MarkRead(ctx context.Context, companyID, recipientID, id string) error {
	if err := s.repo.Notification.MarkRead(ctx, companyID, recipientID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("标记通知已读失败", zap.String("notification_id", id), zap.Error(err))
		return fmt.Errorf("标记通知已读失败: %w", err)
	}
	return nil
}

// toNotificationResponse 模型转响应
func toNotificationResponse(n *model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:          n.NotificationID,
		Type:        n.Type,
		Title:       n.Title,
		Content:     n.Content,
		IsRead:      n.IsRead,
		RelatedType: n.RelatedType,
		RelatedID:   n.RelatedID,
		CreatedAt:   n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
