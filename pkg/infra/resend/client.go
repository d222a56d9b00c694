package resend

import (
	"context"
	"html"
	"log/slog"
	"net/url"
	"strings"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/resend/resend-go/v2"
)

// Client relays contact form submissions through the Resend email API.
type Client struct {
	client *resend.Client
	from   string
	to     []string
}

var _ interfaces.Mailer = (*Client)(nil)

type Option func(*resend.Client) error

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *resend.Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid Resend base URL", goerr.V("url", baseURL))
		}
		c.BaseURL = u
		return nil
	}
}

func New(apiKey types.ResendAPIKey, from string, to []string, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Resend API key is empty")
	}
	if from == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "sender address is empty")
	}
	if len(to) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "recipient address is empty")
	}

	client := resend.NewClient(string(apiKey))
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return &Client{
		client: client,
		from:   from,
		to:     to,
	}, nil
}

func (x *Client) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	params := &resend.SendEmailRequest{
		From:    x.from,
		To:      x.to,
		Subject: contactSubject(msg),
		Html:    renderContactHTML(msg),
		ReplyTo: msg.Email,
	}

	sent, err := x.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return goerr.Wrap(err, "failed to send contact email", goerr.V("to", x.to))
	}

	logging.From(ctx).Info("Contact email sent", slog.String("id", sent.Id))
	return nil
}

func contactSubject(msg *model.ContactMessage) string {
	// header injection
	name := strings.NewReplacer("\r", " ", "\n", " ").Replace(msg.Name)
	return "New Contact: " + name
}

func renderContactHTML(msg *model.ContactMessage) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(msg.Name) + "</p>\n")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(msg.Email) + "</p>\n")
	b.WriteString("<p><strong>Message:</strong></p>\n")
	b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>") + "</p>\n")
	return b.String()
}
