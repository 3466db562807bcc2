package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naveenspark/folio/pkg/domain"
)

func ptr(s string) *string { return &s }

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		lang domain.Lang
		want string
	}{
		{"2022/01/01", domain.English, "January 2022"},
		{"2022/01/01", domain.Spanish, "enero de 2022"},
		{"2024-07-15", domain.English, "July 2024"},
		{"2023-09-01T10:00:00Z", domain.Spanish, "septiembre de 2023"},
		{"2021-03", domain.English, "March 2021"},
		{"sometime soon", domain.English, "sometime soon"},
		{"2022/13/01", domain.English, "2022/13/01"},
		{"", domain.English, ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in, tt.lang); got != tt.want {
			t.Errorf("FormatDate(%q, %s) = %q, want %q", tt.in, tt.lang, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2022-01-01", NormalizeDate("2022/01/01"))
	assert.Equal(t, "2022-01-01", NormalizeDate(" 2022-01-01 "))
	assert.Equal(t, "not a date", NormalizeDate("not a date"))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "January 2022 - July 2024",
		FormatPeriod("2022/01/01", ptr("2024/07/01"), LocaleLang("en-US")))
	assert.Equal(t, "enero de 2022 - julio de 2024",
		FormatPeriod("2022/01/01", ptr("2024/07/01"), LocaleLang("es")))

	en := FormatPeriod("2022/01/01", nil, LocaleLang("en-US"))
	assert.True(t, strings.HasSuffix(en, "Present"), en)
	assert.Equal(t, "January 2022 - Present", en)

	es := FormatPeriod("2022/01/01", nil, LocaleLang("es"))
	assert.True(t, strings.HasSuffix(es, "Presente"), es)

	assert.Equal(t, "March 2020 - Present", FormatPeriod("2020/03/10", ptr("  "), domain.English))
}

func TestFormatPeriodAllMonths(t *testing.T) {
	for m := 1; m <= 12; m++ {
		start := "2020/" + twoDigits(m) + "/01"
		got := FormatPeriod(start, ptr("2021/"+twoDigits(m)+"/28"), domain.English)
		parts := strings.Split(got, " - ")
		if assert.Len(t, parts, 2, got) {
			assert.True(t, strings.HasSuffix(parts[0], " 2020"), got)
			assert.True(t, strings.HasSuffix(parts[1], " 2021"), got)
			assert.NotContains(t, got, "/")
		}
	}
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return "1" + string(rune('0'+n-10))
}

func TestFormatPeriodFallsBackToRaw(t *testing.T) {
	assert.Equal(t, "Fall 2019 - Present", FormatPeriod("Fall 2019", nil, domain.English))
	assert.Equal(t, "2019 - someday", FormatPeriod("2019", ptr("someday"), domain.English))
	assert.Equal(t, "Presente", FormatPeriod("", nil, domain.Spanish))
}
