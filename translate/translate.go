// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	var locales []string

	// CORELANG_LANG overrides the detected user locale.
	if lang := os.Getenv("CORELANG_LANG"); len(lang) != 0 {
		locales = []string{lang}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("corelang: locale: %v", err)
		}
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer from a list of preferred locales.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
