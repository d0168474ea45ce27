package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"teamflow/backend/config"
	"teamflow/backend/internal/dto"
)

func TestExportService_ExportAbsences(t *testing.T) {
	repo, mocks := newMockRepos()
	logger := zap.NewNop()
	absenceCfg := &config.AbsenceConfig{DefaultVacationDays: 30}
	absenceSvc := NewAbsenceService(absenceCfg, repo, NewNotificationService(repo, &recordingMailer{}, logger), logger)
	exportSvc := NewExportService(repo, logger)
	seedStandardTenant(mocks)

	resp := mustSubmit(t, absenceSvc, testEmployeeID, "vacation", "2026-03-02", "2026-03-06")
	if _, err := absenceSvc.Approve(context.Background(), testCompanyID, resp.ID, testManagerID); err != nil {
		t.Fatalf("批准失败: %v", err)
	}
	mustSubmit(t, absenceSvc, testEmployeeID, "sick_leave", "2026-04-06", "2026-04-07")

	buf, filename, err := exportSvc.ExportAbsences(context.Background(), testCompanyID, &dto.StatisticsRequest{Year: 2026})
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if filename != "absences_2026.xlsx" {
		t.Errorf("文件名错误: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容不是有效的 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("请假明细")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 条明细
	if len(rows) != 3 {
		t.Fatalf("应有 3 行，实际=%d", len(rows))
	}
	if rows[0][0] != "申请人" {
		t.Errorf("表头错误: %v", rows[0])
	}
	if rows[1][0] != "alice" || rows[1][2] != "年假" {
		t.Errorf("明细行错误: %v", rows[1])
	}
}

func TestExportService_EmptyYear(t *testing.T) {
	repo, _ := newMockRepos()
	exportSvc := NewExportService(repo, zap.NewNop())

	buf, _, err := exportSvc.ExportAbsences(context.Background(), testCompanyID, &dto.StatisticsRequest{Year: 2026})
	if err != nil {
		t.Fatalf("空数据导出失败: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容不是有效的 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("请假明细")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("空数据应只有表头行，实际=%d 行", len(rows))
	}
}
