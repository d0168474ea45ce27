package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/pkg/jwt"
	"teamflow/backend/pkg/redis"
	"teamflow/backend/pkg/response"
)

// Context 键常量
const (
	CtxClaims     = "claims"
	CtxUserID     = "user_id"
	CtxEmployeeID = "employee_id"
	CtxCompanyID  = "company_id"
	CtxRole       = "role"
)

// JWTAuth JWT 认证中间件
// 解析 Access Token 后把 user_id / employee_id / company_id / role 注入 Context，
// 下游逐层显式传参使用，company_id 是所有租户过滤的唯一来源
// rdb 为 nil 时跳过黑名单检查（Redis 降级运行）
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 40101, "缺少 Authorization 请求头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 40102, "Authorization 格式应为 Bearer <token>")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 40103, "token 已过期")
			} else {
				response.Unauthorized(c, 40104, "token 无效")
			}
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 40104, "token 无效")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("查询 Token 黑名单失败，放行请求", zap.Error(err))
			} else if blacklisted {
				response.Unauthorized(c, 40105, "token 已失效")
				c.Abort()
				return
			}
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmployeeID, claims.EmployeeID)
		c.Set(CtxCompanyID, claims.CompanyID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RoleAuth 角色鉴权中间件，须在 JWTAuth 之后挂载
func RoleAuth(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if _, ok := allowed[role]; !ok {
			response.Forbidden(c, 40301, "当前角色无权访问")
			c.Abort()
			return
		}
		c.Next()
	}
}
