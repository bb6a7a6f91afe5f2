package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/survey"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridNotifier mails the report to the department admin.
type SendGridNotifier struct {
	key        string
	from       *sgmail.Email
	admin      *sgmail.Email
	subjPrefix string
}

// NewSendGridNotifier creates a notifier posting through the SendGrid API.
func NewSendGridNotifier(key, fromEmail, adminEmail string) *SendGridNotifier {
	return &SendGridNotifier{
		key:        key,
		from:       sgmail.NewEmail("CamPulse", fromEmail),
		admin:      sgmail.NewEmail("", adminEmail),
		subjPrefix: "[CamPulse] ",
	}
}

func (n *SendGridNotifier) SendAnalysisToAdmin(ctx context.Context, data *survey.FeedbackData, report *analysis.Analysis) error {
	subject, body, err := RenderReport(data, report)
	if err != nil {
		return err
	}

	p := sgmail.NewPersonalization()
	p.Subject = n.subjPrefix + subject
	p.AddTos(n.admin)

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", body))

	req := sendgrid.GetRequest(n.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
