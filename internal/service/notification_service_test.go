package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/model"
)

func newNotificationFixture() (NotificationService, *mockRepos, *recordingMailer) {
	repo, mocks := newMockRepos()
	m := &recordingMailer{}
	return NewNotificationService(repo, m, zap.NewNop()), mocks, m
}

func TestNotificationService_MailFailureStillWritesInApp(t *testing.T) {
	svc, mocks, mail := newNotificationFixture()
	seedStandardTenant(mocks)
	mail.sendErr = errors.New("smtp unreachable")

	eid := testEmployeeID
	req := &model.AbsenceRequest{
		AbsenceRequestID: "req-1",
		CompanyID:        testCompanyID,
		EmployeeID:       &eid,
		Type:             model.AbsenceVacation,
		StartDate:        date(2026, 3, 2),
		EndDate:          date(2026, 3, 6),
	}
	svc.NotifyAbsenceSubmitted(context.Background(), testCompanyID, req)

	if len(mocks.notification.notifications) != 1 {
		t.Fatalf("邮件失败不影响站内信，应有 1 条通知，实际=%d", len(mocks.notification.notifications))
	}
	n := mocks.notification.notifications[0]
	if n.RecipientID != testManagerID {
		t.Errorf("接收人应为主管，实际=%s", n.RecipientID)
	}
	if n.RelatedID == nil || *n.RelatedID != "req-1" {
		t.Error("通知应关联请假申请 ID")
	}
}

func TestNotificationService_DecidedSkipsNonFinalStatus(t *testing.T) {
	svc, mocks, _ := newNotificationFixture()
	seedStandardTenant(mocks)

	eid := testEmployeeID
	req := &model.AbsenceRequest{
		AbsenceRequestID: "req-1",
		CompanyID:        testCompanyID,
		EmployeeID:       &eid,
		Type:             model.AbsenceVacation,
		Status:           model.AbsencePending,
		StartDate:        date(2026, 3, 2),
		EndDate:          date(2026, 3, 6),
	}
	svc.NotifyAbsenceDecided(context.Background(), testCompanyID, req)

	if len(mocks.notification.notifications) != 0 {
		t.Errorf("pending 状态不应触发审批结果通知，实际=%d 条", len(mocks.notification.notifications))
	}
}

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	svc, mocks, _ := newNotificationFixture()
	seedStandardTenant(mocks)

	for i := 0; i < 3; i++ {
		_ = mocks.notification.Create(context.Background(), &model.Notification{
			CompanyID:   testCompanyID,
			RecipientID: testEmployeeID,
			Type:        NotifyAbsenceDecided,
			Title:       "t",
			Content:     "c",
		})
	}

	list, total, err := svc.List(context.Background(), testCompanyID, testEmployeeID, &dto.NotificationListRequest{})
	if err != nil {
		t.Fatalf("查询通知失败: %v", err)
	}
	if total != 3 || len(list) != 3 {
		t.Fatalf("应返回 3 条通知，实际 total=%d len=%d", total, len(list))
	}

	if err := svc.MarkRead(context.Background(), testCompanyID, testEmployeeID, list[0].ID); err != nil {
		t.Fatalf("标记已读失败: %v", err)
	}

	unread, total, err := svc.List(context.Background(), testCompanyID, testEmployeeID, &dto.NotificationListRequest{UnreadOnly: true})
	if err != nil {
		t.Fatalf("查询未读通知失败: %v", err)
	}
	if total != 2 || len(unread) != 2 {
		t.Errorf("标记后未读应剩 2 条，实际 total=%d len=%d", total, len(unread))
	}
}

func TestNotificationService_MarkRead_WrongRecipient(t *testing.T) {
	svc, mocks, _ := newNotificationFixture()
	seedStandardTenant(mocks)

	_ = mocks.notification.Create(context.Background(), &model.Notification{
		NotificationID: "n-1",
		CompanyID:      testCompanyID,
		RecipientID:    testEmployeeID,
		Type:           NotifyAbsenceDecided,
		Title:          "t",
		Content:        "c",
	})

	if err := svc.MarkRead(context.Background(), testCompanyID, testManagerID, "n-1"); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("他人通知不可标记，期望 ErrNotificationNotFound，实际 %v", err)
	}
}
