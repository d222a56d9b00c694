package types

import "log/slog"

// ResendAPIKey is the credential of the transactional email service.
type ResendAPIKey string

func (x ResendAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ResendAPIKey) String() string {
	return "***********"
}
