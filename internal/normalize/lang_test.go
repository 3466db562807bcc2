package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naveenspark/folio/pkg/domain"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		lang   domain.Lang
		en, es string
		want   string
	}{
		{"english", domain.English, "Hello", "Hola", "Hello"},
		{"spanish", domain.Spanish, "Hello", "Hola", "Hola"},
		{"spanish falls back", domain.Spanish, "Hello", "", "Hello"},
		{"english falls back", domain.English, "  ", "Hola", "Hola"},
		{"both empty", domain.English, "", "", ""},
		{"both blank", domain.Spanish, " ", "\t", ""},
		{"unknown lang acts as english", domain.Lang("fr"), "Hello", "Hola", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.lang, tt.en, tt.es))
		})
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.Lang
		wantOK bool
	}{
		{"en", domain.English, true},
		{"en-US", domain.English, true},
		{"es", domain.Spanish, true},
		{"es-419", domain.Spanish, true},
		{"es_ES.UTF-8", domain.Spanish, true},
		{"en_GB@euro", domain.English, true},
		{"fr-FR", "", false},
		{"C", "", false},
		{"", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLang(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLang(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	assert.Equal(t, domain.English, LocaleLang("de-DE"))
}

func TestMatchAcceptLanguage(t *testing.T) {
	lang, ok := MatchAcceptLanguage("es-MX,es;q=0.9,en;q=0.8")
	assert.True(t, ok)
	assert.Equal(t, domain.Spanish, lang)

	lang, ok = MatchAcceptLanguage("en-GB")
	assert.True(t, ok)
	assert.Equal(t, domain.English, lang)

	_, ok = MatchAcceptLanguage("")
	assert.False(t, ok)
}
