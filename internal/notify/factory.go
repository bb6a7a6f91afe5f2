package notify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/azizk/campulse/internal/config"
)

// New builds the Notifier selected by configuration. "sendgrid" needs a key
// and both addresses; "console" always works.
func New(cfg config.NotifyConfig, log *zap.Logger) (Notifier, error) {
	switch cfg.Channel {
	case "console", "":
		return NewConsoleNotifier(log), nil
	case "none":
		return NopNotifier{}, nil
	case "sendgrid":
		if cfg.SendGridKey == "" {
			return nil, fmt.Errorf("notify.sendgrid_key is required for the sendgrid channel")
		}
		if cfg.AdminEmail == "" || cfg.FromEmail == "" {
			return nil, fmt.Errorf("notify.admin_email and notify.from_email are required for the sendgrid channel")
		}
		return NewSendGridNotifier(cfg.SendGridKey, cfg.FromEmail, cfg.AdminEmail), nil
	default:
		return nil, fmt.Errorf("unknown notify channel: %q", cfg.Channel)
	}
}
