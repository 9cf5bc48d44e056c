// Package translate renders user-facing messages in the caller's locale.
package translate

import (
	"log/slog"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// fallback locale when the environment reports none.
const fallback = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Locales returns the user's preferred locales, most preferred first.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		slog.Debug("cva5data: locale", "error", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(func() {
		printer = message.NewPrinter(message.MatchLanguage(Locales()...))
	})
	return printer.Sprintf(key, args...)
}
