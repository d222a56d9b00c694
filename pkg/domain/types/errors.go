package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption       = goerr.New("invalid option")
	ErrValidationFailed    = goerr.New("validation failed")
	ErrUpstream            = goerr.New("upstream request failed")
	ErrMailerNotConfigured = goerr.New("mailer is not configured")
)
