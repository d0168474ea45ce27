package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/model"
	"teamflow/backend/internal/repository"
)

// ExportService 报表导出服务接口
type ExportService interface {
	// ExportAbsences 导出指定年份的请假明细 Excel，返回文件内容与建议文件名
	ExportAbsences(ctx context.Context, companyID string, q *dto.StatisticsRequest) (*bytes.Buffer, string, error)
}

// exportService ExportService 实现
type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建导出服务
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// 导出表头
var absenceExportHeaders = []string{
	"申请人", "部门", "类型", "状态", "开始日期", "结束日期", "工作日数", "事由", "提交时间",
}

func (s *exportService) ExportAbsences(ctx context.Context, companyID string, q *dto.StatisticsRequest) (*bytes.Buffer, string, error) {
	year := q.Year
	if year == 0 {
		year = time.Now().Year()
	}
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	reqs, err := s.repo.Absence.ListForPeriod(ctx, companyID, q.EmployeeID, yearStart, yearEnd)
	if err != nil {
		s.logger.Error("导出查询请假明细失败", zap.Error(err))
		return nil, "", fmt.Errorf("导出请假明细失败: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("关闭 Excel 文件失败", zap.Error(err))
		}
	}()

	sheet := "请假明细"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("生成 Excel 失败: %w", err)
	}

	for i, h := range absenceExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("生成 Excel 失败: %w", err)
		}
	}

	for row, req := range reqs {
		values := []interface{}{
			requesterName(&req),
			departmentName(&req),
			req.Type.Label(),
			string(req.Status),
			req.StartDate.Format("2006-01-02"),
			req.EndDate.Format("2006-01-02"),
			WorkingDays(req.StartDate, req.EndDate),
			req.Reason,
			req.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("生成 Excel 失败: %w", err)
			}
		}
	}

	// 常用列加宽
	_ = f.SetColWidth(sheet, "A", "B", 16)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "H", "H", 30)
	_ = f.SetColWidth(sheet, "I", "I", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", fmt.Errorf("生成 Excel 失败: %w", err)
	}

	filename := fmt.Sprintf("absences_%d.xlsx", year)
	return buf, filename, nil
}

// requesterName 优先取档案姓名，降级申请用标签
func requesterName(req *model.AbsenceRequest) string {
	if req.Employee != nil {
		return req.Employee.Name
	}
	return req.RequesterLabel
}

// departmentName 取申请人部门名，缺省为空
func departmentName(req *model.AbsenceRequest) string {
	if req.Employee != nil && req.Employee.Department != nil {
		return req.Employee.Department.Name
	}
	return ""
}
