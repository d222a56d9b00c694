package model

import (
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrMissingContactFields = goerr.Wrap(types.ErrValidationFailed, "missing required fields")
	ErrInvalidEmail         = goerr.Wrap(types.ErrValidationFailed, "invalid email address")
	ErrInvalidSortKey       = goerr.Wrap(types.ErrValidationFailed, "invalid sort key")
)
