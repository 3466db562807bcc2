package domain

import (
	"errors"
	"testing"
)

func TestContactMessageValidate(t *testing.T) {
	tests := []struct {
		name string
		msg  ContactMessage
		want error
	}{
		{"valid", ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi"}, nil},
		{"missing name", ContactMessage{Email: "ada@example.com", Message: "hi"}, ErrNameRequired},
		{"missing email", ContactMessage{Name: "Ada", Message: "hi"}, ErrEmailRequired},
		{"missing message", ContactMessage{Name: "Ada", Email: "ada@example.com"}, ErrMessageRequired},
		{"not an address", ContactMessage{Name: "Ada", Email: "ada", Message: "hi"}, ErrInvalidEmail},
		{"display name form", ContactMessage{Name: "Ada", Email: "Ada <ada@example.com>", Message: "hi"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestContactMessageTrimmed(t *testing.T) {
	got := ContactMessage{Name: " Ada ", Email: "\tada@example.com\n", Message: "  hi  "}.Trimmed()
	want := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi"}
	if got != want {
		t.Errorf("Trimmed() = %+v, want %+v", got, want)
	}
}
