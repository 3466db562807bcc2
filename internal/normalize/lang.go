package normalize

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/naveenspark/folio/pkg/domain"
)

var langMatcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// ParseLang resolves a locale string such as "es", "en-US" or "es_ES.UTF-8"
// to a supported language. ok is false when s names neither.
func ParseLang(s string) (lang domain.Lang, ok bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return domain.English, true
	case "es":
		return domain.Spanish, true
	}
	return "", false
}

// LocaleLang is ParseLang with an English default.
func LocaleLang(locale string) domain.Lang {
	if l, ok := ParseLang(locale); ok {
		return l
	}
	return domain.English
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header. ok is false when nothing in the header matches.
func MatchAcceptLanguage(header string) (domain.Lang, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	if idx == 1 {
		return domain.Spanish, true
	}
	return domain.English, true
}

// Pick returns the variant matching lang, falling back to the other variant
// when it is blank. Both blank yields "".
func Pick(lang domain.Lang, en, es string) string {
	primary, other := en, es
	if lang == domain.Spanish {
		primary, other = es, en
	}
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	if strings.TrimSpace(other) != "" {
		return other
	}
	return ""
}
