package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamflow/backend/config"
	"teamflow/backend/internal/api/handler"
	"teamflow/backend/internal/api/middleware"
	"teamflow/backend/pkg/jwt"
	"teamflow/backend/pkg/redis"
)

// 请求体上限 1MB：本服务只接收小 JSON
const maxBodyBytes = 1 << 20

// New 组装路由与中间件
func New(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(&cfg.Server.CORS),
		middleware.SecurityHeaders(),
		middleware.BodyLimit(maxBodyBytes),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// ── 认证（无需登录）──
	auth := api.Group("/auth")
	auth.POST("/login", middleware.RateLimit(rdb, logger, 10, time.Minute), h.Auth.Login)
	auth.POST("/refresh", middleware.RateLimit(rdb, logger, 30, time.Minute), h.Auth.Refresh)

	// ── 登录后接口 ──
	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, rdb, logger))

	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/me", h.Auth.Me)

	approver := middleware.RoleAuth("manager", "admin")

	absences := authed.Group("/absences")
	{
		absences.POST("", h.Absence.Submit)
		absences.GET("", approver, h.Absence.List)
		absences.GET("/my", h.Absence.ListMine)
		absences.GET("/statistics", h.Absence.Statistics)
		absences.GET("/substitutes", h.Absence.AvailableSubstitutes)
		absences.GET("/:id", h.Absence.Get)
		absences.GET("/:id/conflicts", h.Absence.CheckConflicts)
		absences.PUT("/:id/approve", approver, h.Absence.Approve)
		absences.PUT("/:id/reject", approver, h.Absence.Reject)
		absences.PUT("/:id/cancel", h.Absence.Cancel)
		absences.PUT("/:id/substitute", h.Absence.AssignSubstitute)
		absences.PUT("/:id/substitute/confirm", h.Absence.ConfirmSubstitute)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.PUT("/:id/read", h.Notification.MarkRead)
	}

	employees := authed.Group("/employees", approver)
	{
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
	}

	authed.GET("/export/absences", approver, h.Export.ExportAbsences)

	return r
}
