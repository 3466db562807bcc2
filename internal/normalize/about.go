package normalize

import (
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

// AboutView is the normalized about section.
type AboutView struct {
	FullName    string   `json:"full_name"`
	Title       string   `json:"title"`
	Image       string   `json:"image_url"`
	Nationality string   `json:"nationality,omitempty"`
	Description []string `json:"description"`
}

// HeroView is the landing banner derived from the profile.
type HeroView struct {
	Name        string `json:"name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Title       string `json:"title"`
	Description string `json:"hero_description"`
}

// ContactInfo kinds.
const (
	ContactEmail    = "email"
	ContactLocation = "location"
)

// ContactInfo is a single contact card.
type ContactInfo struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Link  string `json:"link"`
}

func fullName(p *domain.Profile) string {
	return strings.TrimSpace(p.Name + " " + p.LastName)
}

// About normalizes the profile for the about section.
func About(p *domain.Profile, lang domain.Lang) AboutView {
	if p == nil {
		return AboutView{Description: []string{}}
	}
	return AboutView{
		FullName:    fullName(p),
		Title:       Pick(lang, p.JobTitleEN, p.JobTitleES),
		Image:       domain.InlineOr(p.PhotoData, p.PhotoURL),
		Nationality: Pick(lang, p.NationalityEN, p.NationalityES),
		Description: Paragraphs(Pick(lang, p.BioEN, p.BioES)),
	}
}

// Hero normalizes the profile for the landing banner.
func Hero(p *domain.Profile, lang domain.Lang) HeroView {
	if p == nil {
		return HeroView{}
	}
	return HeroView{
		Name:        p.Name,
		LastName:    p.LastName,
		FullName:    fullName(p),
		Title:       Pick(lang, p.JobTitleEN, p.JobTitleES),
		Description: Pick(lang, p.HeroDescriptionEN, p.HeroDescriptionES),
	}
}

// ContactCards returns the email and location cards. Blank values are skipped.
func ContactCards(p *domain.Profile) []ContactInfo {
	cards := []ContactInfo{}
	if p == nil {
		return cards
	}
	if email := strings.TrimSpace(p.Email); email != "" {
		cards = append(cards, ContactInfo{Type: ContactEmail, Value: email, Link: "mailto:" + email})
	}
	if loc := strings.TrimSpace(p.Location); loc != "" {
		cards = append(cards, ContactInfo{Type: ContactLocation, Value: loc, Link: "#"})
	}
	return cards
}
