package handler

import (
	"github.com/gin-gonic/gin"

	"teamflow/backend/internal/api/middleware"
	"teamflow/backend/pkg/jwt"
)

// 从 Context 读取 JWTAuth 注入的身份信息

func companyIDFrom(c *gin.Context) string {
	return c.GetString(middleware.CtxCompanyID)
}

func userIDFrom(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

func employeeIDFrom(c *gin.Context) string {
	return c.GetString(middleware.CtxEmployeeID)
}

func roleFrom(c *gin.Context) string {
	return c.GetString(middleware.CtxRole)
}

func claimsFrom(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(middleware.CtxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}
