package prefs

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/pkg/domain"
)

// DefaultLang is used when the system locale names no supported language.
const DefaultLang = domain.English

// SystemTheme treats a dark terminal background as a dark color-scheme preference.
func SystemTheme() Theme {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// SystemLanguage returns the first non-empty of LC_ALL, LC_MESSAGES and LANG.
func SystemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// DefaultLanguage resolves the probe's locale to a supported language,
// falling back to DefaultLang.
func DefaultLanguage(probe func() string) domain.Lang {
	if probe == nil {
		return DefaultLang
	}
	if l, ok := normalize.ParseLang(probe()); ok {
		return l
	}
	return DefaultLang
}
