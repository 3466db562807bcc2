package domain

import (
	"errors"
	"net/mail"
	"strings"
)

// Contact is the /contact payload. Social links may come as an explicit
// array, as individually named URL fields, or both.
type Contact struct {
	CVURL          *string         `json:"cv_url"`
	CVData         *FileData       `json:"cv_data,omitempty"`
	LinkedInURL    *string         `json:"linkedin_url"`
	GitHubURL      *string         `json:"github_url"`
	TwitterURL     *string         `json:"twitter_url"`
	InstagramURL   *string         `json:"instagram_url"`
	SocialNetworks []SocialNetwork `json:"social_networks,omitempty"`
}

// SocialNetwork is one social profile link.
type SocialNetwork struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	IconName     string `json:"icon_name"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"display_order"`
}

// ContactMessage is the contact form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact submission validation errors.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrInvalidEmail    = errors.New("email is not a valid address")
)

// Trimmed returns m with surrounding whitespace removed from every field.
func (m ContactMessage) Trimmed() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks a trimmed submission. The email must be a bare address.
func (m ContactMessage) Validate() error {
	switch {
	case m.Name == "":
		return ErrNameRequired
	case m.Email == "":
		return ErrEmailRequired
	case m.Message == "":
		return ErrMessageRequired
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return ErrInvalidEmail
	}
	return nil
}

// ContactResult is the backend's answer to a contact submission.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
