package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
)

// ErrNoRecipient marks notices that can never be delivered
var ErrNoRecipient = errors.New("notice has no recipient email")

// Sender delivers one email
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

const redemptionSubject = "Your {{.ProductTitle}} is on its way"

const redemptionText = `Hi {{if .Name}}{{.Name}}{{else}}there{{end}},

You redeemed {{.ProductTitle}} for {{.Points}} points.
Add your shipping address in the gift shop so we can send it out.

The Fanattics team
`

const redemptionHTML = `<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>You redeemed <strong>{{.ProductTitle}}</strong> for {{.Points}} points.</p>
<p>Add your shipping address in the gift shop so we can send it out.</p>
<p>The Fanattics team</p>
`

var (
	subjectTemplate = texttpl.Must(texttpl.New("subject").Parse(redemptionSubject))
	textTemplate    = texttpl.Must(texttpl.New("text").Parse(redemptionText))
	htmlTemplate    = htmltpl.Must(htmltpl.New("html").Parse(redemptionHTML))
)

// RedemptionMailer turns redemption notices into emails
type RedemptionMailer struct {
	sender Sender
	logger coreport.Logger
}

// NewRedemptionMailer creates a RedemptionMailer
func NewRedemptionMailer(sender Sender, logger coreport.Logger) *RedemptionMailer {
	return &RedemptionMailer{sender: sender, logger: logger}
}

// Render produces the subject, text and HTML bodies of the notice email
func Render(notice notification.RedemptionNotice) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = subjectTemplate.Execute(&buf, notice); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = buf.String()

	buf.Reset()
	if err = textTemplate.Execute(&buf, notice); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	text = buf.String()

	buf.Reset()
	if err = htmlTemplate.Execute(&buf, notice); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	return subject, text, buf.String(), nil
}

// HandleRedemption emails the member named in notice
func (m *RedemptionMailer) HandleRedemption(ctx context.Context, notice notification.RedemptionNotice) error {
	if notice.Email == "" {
		return ErrNoRecipient
	}

	subject, text, html, err := Render(notice)
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, notice.Email, subject, text, html); err != nil {
		m.logger.Error("Failed to send redemption email", map[string]any{
			"user_id":    notice.UserID,
			"product_id": notice.ProductID,
			"error":      err.Error(),
		})
		return err
	}

	m.logger.Info("Redemption email sent", map[string]any{
		"user_id":    notice.UserID,
		"product_id": notice.ProductID,
	})
	return nil
}
