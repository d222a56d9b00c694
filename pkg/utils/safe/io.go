package safe

import (
	"io"
	"log/slog"

	"github.com/asaleem9/folio/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Drain discards the rest of r so that the underlying connection can be reused
func Drain(r io.Reader) {
	if r == nil {
		return
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		logging.Default().Warn("Fail to drain reader", slog.Any("error", err))
	}
}
