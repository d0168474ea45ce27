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
)

// EmployeeService 员工查询服务接口
type EmployeeService interface {
	Get(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, companyID string, q *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
}

// employeeService EmployeeService 实现
type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建员工服务
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Get(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", id), zap.Error(err))
		return nil, fmt.Errorf("查询员工失败: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) List(ctx context.Context, companyID string, q *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	employees, total, err := s.repo.Employee.ListByCompany(
		ctx, companyID, q.DepartmentID, q.GetOffset(), q.GetPageSize())
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, 0, fmt.Errorf("查询员工列表失败: %w", err)
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, *toEmployeeResponse(&employees[i]))
	}
	return resp, total, nil
}

// toEmployeeResponse 模型转响应（不含密码哈希等敏感字段）
func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:                    e.EmployeeID,
		CompanyID:             e.CompanyID,
		Name:                  e.Name,
		Email:                 e.Email,
		Role:                  e.Role,
		ManagerID:             e.ManagerID,
		VacationDays:          e.VacationDays,
		RemainingVacationDays: e.RemainingVacationDays,
	}
	if e.Department != nil {
		resp.Department = &dto.DepartmentBrief{
			ID:   e.Department.DepartmentID,
			Name: e.Department.Name,
		}
	}
	return resp
}
