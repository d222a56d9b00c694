package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

var ptnEmailAddress = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func (x *ContactMessage) Validate() error {
	if strings.TrimSpace(x.Name) == "" ||
		strings.TrimSpace(x.Email) == "" ||
		strings.TrimSpace(x.Message) == "" {
		return goerr.Wrap(ErrMissingContactFields, "contact form is incomplete")
	}

	if !ptnEmailAddress.MatchString(strings.TrimSpace(x.Email)) {
		return goerr.Wrap(ErrInvalidEmail, "contact email does not look like an address",
			goerr.V("email", x.Email),
		)
	}

	return nil
}
