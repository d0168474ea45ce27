package jwt

import (
	"testing"
	"time"

	"teamflow/backend/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-at-least-16-chars",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParse(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "emp-1", "company-1", "employee")
	if err != nil {
		t.Fatalf("生成 AccessToken 应成功: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 Token 应成功: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("期望 user_id=user-1，实际=%s", claims.UserID)
	}
	if claims.EmployeeID != "emp-1" {
		t.Errorf("期望 employee_id=emp-1，实际=%s", claims.EmployeeID)
	}
	if claims.CompanyID != "company-1" {
		t.Errorf("期望 company_id=company-1，实际=%s", claims.CompanyID)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 token_type=access，实际=%s", claims.TokenType)
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	token, err := mgr.GenerateRefreshToken("user-1", "", "company-1", "admin")
	if err != nil {
		t.Fatalf("生成 RefreshToken 应成功: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 Token 应成功: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("期望 token_type=refresh，实际=%s", claims.TokenType)
	}
	if claims.EmployeeID != "" {
		t.Errorf("无员工档案时 employee_id 应为空，实际=%s", claims.EmployeeID)
	}
}

func TestManager_ParseExpiredToken(t *testing.T) {
	mgr := newTestManager(-time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "emp-1", "company-1", "employee")
	if err != nil {
		t.Fatalf("生成 Token 应成功: %v", err)
	}

	if _, err := mgr.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestManager_ParseGarbage(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	if _, err := mgr.ParseToken("not-a-token"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestManager_ParseWrongSecret(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-key-16-chars-min",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, _ := mgr.GenerateAccessToken("user-1", "emp-1", "company-1", "employee")
	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
