package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/asaleem9/folio/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// SendContact validates a contact form submission and relays it to the
// configured mailer.
func (x *UseCase) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	if msg == nil {
		metrics.ContactSubmitted("invalid")
		return goerr.Wrap(model.ErrMissingContactFields, "contact message is nil")
	}

	if err := msg.Validate(); err != nil {
		metrics.ContactSubmitted("invalid")
		return err
	}

	if x.clients.Mailer() == nil {
		metrics.ContactSubmitted("failed")
		return goerr.Wrap(types.ErrMailerNotConfigured, "can not relay contact message")
	}

	trimmed := &model.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}

	if err := x.clients.Mailer().SendContact(ctx, trimmed); err != nil {
		metrics.ContactSubmitted("failed")
		return goerr.Wrap(err, "failed to send contact message")
	}

	metrics.ContactSubmitted("sent")
	logging.From(ctx).Info("Relayed contact message", slog.Int("message_length", len(trimmed.Message)))
	return nil
}
