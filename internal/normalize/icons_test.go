package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"book-open", "BookOpen"},
		{"book_open", "BookOpen"},
		{"book open", "BookOpen"},
		{"  book--open__now ", "BookOpenNow"},
		{"BookOpen", "Bookopen"},
		{"BOOK", "Book"},
		{"code", "Code"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToPascalCase(tt.in); got != tt.want {
			t.Errorf("ToPascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveIcon(t *testing.T) {
	for _, name := range []string{"book-open", "book_open", "book open", "BookOpen", "BOOKOPEN", "bookopen"} {
		assert.Equal(t, "BookOpen", ResolveIcon(name), name)
	}
	assert.Equal(t, "GraduationCap", ResolveIcon("graduation-cap"))
	assert.Equal(t, DefaultIcon, ResolveIcon("no-such-icon"))
	assert.Equal(t, DefaultIcon, ResolveIcon(""))
	assert.Equal(t, "Github", ResolveSocialIcon("GitHub"))
	assert.Equal(t, DefaultSocialIcon, ResolveSocialIcon("mastodon"))
}
