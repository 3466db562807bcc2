// Package portfolio fetches and normalizes portfolio sections and supplies
// fallback content when the content API cannot be reached.
package portfolio

import (
	"fmt"
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

// Section names a fetchable unit of portfolio content.
type Section string

const (
	SectionSite       Section = "site"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionContact    Section = "contact"
)

// Sections lists the content sections in navigation order. Site metadata is
// not a navigable section and is left out.
var Sections = []Section{
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionContact,
}

// NavigationSections are the page anchors in display order.
var NavigationSections = []string{"home", "about", "skills", "projects", "experience", "education", "contact"}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if sec == SectionSite {
		return sec, nil
	}
	for _, known := range Sections {
		if sec == known {
			return sec, nil
		}
	}
	return "", fmt.Errorf("portfolio: unknown section %q", s)
}

// LanguageSensitive reports whether the section must be re-fetched when the
// language changes.
func (s Section) LanguageSensitive() bool {
	switch s {
	case SectionAbout, SectionProjects, SectionExperience, SectionEducation:
		return true
	}
	return false
}

var titles = map[Section][2]string{
	SectionSite:       {"Site", "Sitio"},
	SectionAbout:      {"About", "Sobre mí"},
	SectionSkills:     {"Skills", "Habilidades"},
	SectionProjects:   {"Projects", "Proyectos"},
	SectionExperience: {"Experience", "Experiencia"},
	SectionEducation:  {"Education", "Educación"},
	SectionContact:    {"Contact", "Contacto"},
}

// Title returns the section heading in lang.
func (s Section) Title(lang domain.Lang) string {
	t, ok := titles[s]
	if !ok {
		return string(s)
	}
	if lang == domain.Spanish {
		return t[1]
	}
	return t[0]
}
