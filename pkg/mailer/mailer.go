package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"teamflow/backend/config"
)

// Mailer 外发邮件接口
// 通知类邮件是尽力而为的旁路：调用方捕获并记录错误，绝不向上传播
type Mailer interface {
	Send(to, subject, body string) error
}

// smtpMailer 基于 gomail 的 SMTP 实现
type smtpMailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewMailer 创建 Mailer 实例
// mail.enabled=false 时返回 no-op 实现（开发环境无需 SMTP）
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) Mailer {
	if !cfg.Enabled {
		logger.Info("邮件发送未启用，使用 no-op Mailer")
		return &noopMailer{logger: logger}
	}
	return &smtpMailer{cfg: cfg, logger: logger}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

// noopMailer 仅记录日志，不实际外发
type noopMailer struct {
	logger *zap.Logger
}

func (m *noopMailer) Send(to, subject, _ string) error {
	m.logger.Debug("邮件发送已跳过（未启用）",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
