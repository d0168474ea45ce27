package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamflow/backend/config"
	"teamflow/backend/internal/dto"
	"teamflow/backend/internal/model"
	"teamflow/backend/internal/repository"
	"teamflow/backend/pkg/jwt"
	"teamflow/backend/pkg/redis"
)

var (
	ErrInvalidCredentials  = errors.New("邮箱或密码错误")
	ErrInvalidRefreshToken = errors.New("refresh token 无效")
)

// AuthService 认证服务接口
type AuthService interface {
	Login(ctx context.Context, q *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout 将当前 Token 对加入黑名单；Redis 不可用时降级为仅记录日志
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, companyID, employeeID string) (*dto.EmployeeResponse, error)
}

// authService AuthService 实现
type authService struct {
	cfg    *config.AuthConfig
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client // 可为 nil（Redis 降级运行）
	logger *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(cfg *config.AuthConfig, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, q *dto.LoginRequest) (*dto.TokenResponse, error) {
	employee, err := s.repo.Employee.GetByEmail(ctx, q.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("登录查询员工失败", zap.Error(err))
		return nil, fmt.Errorf("登录失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(q.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(employee)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("查询 Token 黑名单失败，放行刷新", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidRefreshToken
		}
	}

	employee, err := s.repo.Employee.GetByUserAndCompany(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("刷新查询员工失败", zap.Error(err))
		return nil, fmt.Errorf("刷新 Token 失败: %w", err)
	}

	return s.issueTokens(employee)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		s.logger.Warn("Redis 不可用，登出未写入黑名单",
			zap.String("user_id", claims.UserID))
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.Error(err))
		return fmt.Errorf("登出失败: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, companyID, employeeID string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询当前员工失败", zap.Error(err))
		return nil, fmt.Errorf("查询当前员工失败: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// issueTokens 签发 Access/Refresh Token 对
func (s *authService) issueTokens(employee *model.Employee) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(
		employee.UserID, employee.EmployeeID, employee.CompanyID, employee.Role)
	if err != nil {
		s.logger.Error("签发 Access Token 失败", zap.Error(err))
		return nil, fmt.Errorf("签发 Token 失败: %w", err)
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(
		employee.UserID, employee.EmployeeID, employee.CompanyID, employee.Role)
	if err != nil {
		s.logger.Error("签发 Refresh Token 失败", zap.Error(err))
		return nil, fmt.Errorf("签发 Token 失败: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		Employee:     *toEmployeeResponse(employee),
	}, nil
}
