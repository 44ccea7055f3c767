package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, text, html string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, text, html})
	return nil
}

func TestRender(t *testing.T) {
	subject, text, html, err := Render(notification.RedemptionNotice{
		Name:         "Ada",
		ProductTitle: "Mug <deluxe>",
		Points:       250,
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Mug <deluxe> is on its way", subject)
	assert.Contains(t, text, "Hi Ada,")
	assert.Contains(t, text, "for 250 points")
	assert.Contains(t, html, "Mug &lt;deluxe&gt;")

	_, text, _, err = Render(notification.RedemptionNotice{ProductTitle: "Pin", Points: 5})
	require.NoError(t, err)
	assert.Contains(t, text, "Hi there,")
}

func TestRedemptionMailer(t *testing.T) {
	ctx := context.Background()
	notice := notification.RedemptionNotice{UserID: 1, Email: "ada@example.com", Name: "Ada", ProductID: 2, ProductTitle: "Mug", Points: 250}

	t.Run("Sends to the member", func(t *testing.T) {
		sender := &fakeSender{}
		m := NewRedemptionMailer(sender, logger.NewNoopLogger())

		require.NoError(t, m.HandleRedemption(ctx, notice))
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "ada@example.com", sender.sent[0].to)
		assert.Equal(t, "Your Mug is on its way", sender.sent[0].subject)
	})

	t.Run("Missing email", func(t *testing.T) {
		sender := &fakeSender{}
		m := NewRedemptionMailer(sender, logger.NewNoopLogger())

		noEmail := notice
		noEmail.Email = ""
		assert.ErrorIs(t, m.HandleRedemption(ctx, noEmail), ErrNoRecipient)
		assert.Empty(t, sender.sent)
	})

	t.Run("Send failure is returned", func(t *testing.T) {
		sendErr := errors.New("mailgun: 503")
		m := NewRedemptionMailer(&fakeSender{err: sendErr}, logger.NewNoopLogger())

		assert.ErrorIs(t, m.HandleRedemption(ctx, notice), sendErr)
	})
}

func TestNewMailgun(t *testing.T) {
	_, err := NewMailgun(Options{Domain: "mg.example.com"}, logger.NewNoopLogger())
	assert.Error(t, err)

	m, err := NewMailgun(Options{
		Domain:  "mg.example.com",
		APIKey:  "key-test",
		Sender:  "Portal <noreply@example.com>",
		APIBase: "https://api.eu.mailgun.net/v3",
	}, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, "https://api.eu.mailgun.net/v3", m.client.APIBase())
}
