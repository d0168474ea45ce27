package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"teamflow/backend/config"
	"teamflow/backend/internal/dto"
	"teamflow/backend/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *mockRepos, *jwt.Manager) {
	t.Helper()
	repo, mocks := newMockRepos()
	cfg := &config.AuthConfig{
		JWTSecret:       "unit-test-secret-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	}
	jwtMgr := jwt.NewManager(cfg)
	// Redis 置 nil，走降级路径
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), mocks, jwtMgr
}

func seedLoginEmployee(t *testing.T, mocks *mockRepos, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	e := seedEmployee(mocks, testCompanyID, testEmployeeID, "alice", nil)
	e.PasswordHash = string(hash)
}

func TestAuthService_Login(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("应签发 Token 对")
	}
	if resp.ExpiresIn != 900 {
		t.Errorf("expires_in 应为 900 秒，实际=%d", resp.ExpiresIn)
	}
	if resp.Employee.ID != testEmployeeID || resp.Employee.CompanyID != testCompanyID {
		t.Errorf("员工信息错误: %+v", resp.Employee)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "guess",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知邮箱也应返回 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc, mocks, jwtMgr := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	refreshToken, err := jwtMgr.GenerateRefreshToken("user-"+testEmployeeID, testEmployeeID, testCompanyID, "employee")
	if err != nil {
		t.Fatalf("签发 refresh token 失败: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), refreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("刷新应返回新的 access token")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, mocks, jwtMgr := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	accessToken, err := jwtMgr.GenerateAccessToken("user-"+testEmployeeID, testEmployeeID, testCompanyID, "employee")
	if err != nil {
		t.Fatalf("签发 access token 失败: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), accessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("access token 不可用于刷新，期望 ErrInvalidRefreshToken，实际 %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("期望 ErrInvalidRefreshToken，实际 %v", err)
	}
}

func TestAuthService_Logout_RedisDegraded(t *testing.T) {
	svc, mocks, jwtMgr := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	token, err := jwtMgr.GenerateAccessToken("user-"+testEmployeeID, testEmployeeID, testCompanyID, "employee")
	if err != nil {
		t.Fatalf("签发 token 失败: %v", err)
	}
	claims, err := jwtMgr.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}

	// Redis 不可用时登出降级为 no-op，不报错
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("降级登出不应报错: %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedLoginEmployee(t, mocks, "s3cret-pass")

	resp, err := svc.Me(context.Background(), testCompanyID, testEmployeeID)
	if err != nil {
		t.Fatalf("查询当前员工失败: %v", err)
	}
	if resp.Name != "alice" {
		t.Errorf("员工姓名错误: %s", resp.Name)
	}

	if _, err := svc.Me(context.Background(), otherCompanyID, testEmployeeID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("跨租户查询应不可见，期望 ErrEmployeeNotFound，实际 %v", err)
	}
}
