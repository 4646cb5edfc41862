package notifications

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

const defaultFromName = "MS-PRO сайт"

// mailClient is the part of *sendgrid.Client the notifier uses.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridLeadNotifier e-mails every new lead to the sales inbox.
type SendGridLeadNotifier struct {
	client mailClient
	from   *mail.Email
	to     *mail.Email
}

var _ interfaces.ILeadNotifier = (*SendGridLeadNotifier)(nil)

// NewSendGridLeadNotifier returns nil when the API key or the inbox is not configured,
// callers treat a nil notifier as disabled.
func NewSendGridLeadNotifier(apiKey, fromEmail, toEmail string) *SendGridLeadNotifier {
	if apiKey == "" || toEmail == "" {
		return nil
	}
	if fromEmail == "" {
		fromEmail = toEmail
	}
	return &SendGridLeadNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(defaultFromName, fromEmail),
		to:     mail.NewEmail("", toEmail),
	}
}

func (n *SendGridLeadNotifier) NotifyNewLead(ctx context.Context, l entities.Lead) error {
	subject := fmt.Sprintf("Новая заявка: %s (%s)", l.Name, l.ServiceType)
	body := leadBody(l)

	resp, err := n.client.SendWithContext(ctx, mail.NewSingleEmail(n.from, subject, n.to, body, "<pre>"+html.EscapeString(body)+"</pre>"))
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("[lead][notifier] sent lead_id=%s status=%d", l.ID, resp.StatusCode)
	return nil
}

func leadBody(l entities.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Имя: %s\n", l.Name)
	fmt.Fprintf(&b, "Телефон: %s\n", l.Phone)
	fmt.Fprintf(&b, "Email: %s\n", l.Email)
	fmt.Fprintf(&b, "Услуга: %s\n", l.ServiceType)
	fmt.Fprintf(&b, "Источник: %s\n", l.Source)
	if l.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", l.Message)
	}
	fmt.Fprintf(&b, "\nID: %s\nСоздана: %s\n", l.ID, l.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}
