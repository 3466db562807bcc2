package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/naveenspark/folio/pkg/domain"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01",
}

// NormalizeDate rewrites a YYYY/MM/DD date as YYYY-MM-DD. Other input passes
// through apart from surrounding whitespace.
func NormalizeDate(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
}

func parseDate(raw string) (time.Time, bool) {
	s := NormalizeDate(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date as "January 2022" or "enero de 2022". Unparseable
// input is returned as given.
func FormatDate(raw string, lang domain.Lang) string {
	t, ok := parseDate(raw)
	if !ok {
		return raw
	}
	if lang == domain.Spanish {
		return fmt.Sprintf("%s de %d", spanishMonths[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// PresentLabel is the period end shown for ongoing entries.
func PresentLabel(lang domain.Lang) string {
	if lang == domain.Spanish {
		return "Presente"
	}
	return "Present"
}

// FormatPeriod joins formatted start and end dates with " - ". A nil or blank
// end renders as the present label.
func FormatPeriod(start string, end *string, lang domain.Lang) string {
	to := PresentLabel(lang)
	if end != nil && strings.TrimSpace(*end) != "" {
		to = FormatDate(*end, lang)
	}
	from := FormatDate(start, lang)
	if strings.TrimSpace(from) == "" {
		return to
	}
	return from + " - " + to
}

func ongoing(end *string) bool {
	return end == nil || strings.TrimSpace(*end) == ""
}
