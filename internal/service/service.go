package service

import (
	"go.uber.org/zap"

	"teamflow/backend/config"
	"teamflow/backend/internal/repository"
	"teamflow/backend/pkg/jwt"
	"teamflow/backend/pkg/mailer"
	"teamflow/backend/pkg/redis"
)

// Service 所有业务服务的聚合入口
type Service struct {
	Auth         AuthService
	Employee     EmployeeService
	Absence      AbsenceService
	Notification NotificationService
	Export       ExportService
}

// NewService 创建 Service 聚合
// rdb 可为 nil：Redis 不可用时认证服务降级运行
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, m mailer.Mailer, logger *zap.Logger) *Service {
	notifier := NewNotificationService(repo, m, logger)
	return &Service{
		Auth:         NewAuthService(&cfg.Auth, repo, jwtMgr, rdb, logger),
		Employee:     NewEmployeeService(repo, logger),
		Absence:      NewAbsenceService(&cfg.Absence, repo, notifier, logger),
		Notification: notifier,
		Export:       NewExportService(repo, logger),
	}
}
