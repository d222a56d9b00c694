package config

import (
	"context"
	"log/slog"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/infra/resend"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Mailer struct {
	apiKey types.ResendAPIKey `masq:"secret"`
	from   string
	to     []string
}

func (x *Mailer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "resend-api-key",
			Usage:       "Resend API key; the contact relay is disabled without it",
			Category:    "Mailer",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("FOLIO_RESEND_API_KEY", "RESEND_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "mail-from",
			Usage:       "Sender address of contact notifications",
			Category:    "Mailer",
			Value:       "Portfolio Contact <onboarding@resend.dev>",
			Destination: &x.from,
			Sources:     cli.EnvVars("FOLIO_MAIL_FROM"),
		},
		&cli.StringSliceFlag{
			Name:        "mail-to",
			Usage:       "Recipient addresses of contact notifications",
			Category:    "Mailer",
			Destination: &x.to,
			Sources:     cli.EnvVars("FOLIO_MAIL_TO"),
		},
	}
}

// New returns nil without error when no API key is set.
func (x Mailer) New(ctx context.Context) (interfaces.Mailer, error) {
	if x.apiKey == "" {
		logging.From(ctx).Warn("mailer is not configured, contact relay is disabled")
		return nil, nil
	}

	client, err := resend.New(x.apiKey, x.from, x.to)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x Mailer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.String("From", x.from),
		slog.Int("To.len", len(x.to)),
	)
}
