package portfolio

import (
	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/pkg/domain"
)

// AboutContent bundles everything derived from the profile payload.
type AboutContent struct {
	About normalize.AboutView     `json:"about"`
	Hero  normalize.HeroView      `json:"hero"`
	Cards []normalize.ContactInfo `json:"contact_info"`
}

// Content is one normalized section. Only the field matching Section is set.
// Fallback marks sample content substituted after Err.
type Content struct {
	Section    Section                    `json:"section"`
	Lang       domain.Lang                `json:"lang"`
	Fallback   bool                       `json:"fallback,omitempty"`
	Site       *normalize.SiteView        `json:"site,omitempty"`
	About      *AboutContent              `json:"about,omitempty"`
	Skills     *normalize.SkillsView      `json:"skills,omitempty"`
	Projects   []normalize.ProjectView    `json:"projects,omitempty"`
	Experience []normalize.ExperienceView `json:"experience,omitempty"`
	Education  []normalize.EducationView  `json:"education,omitempty"`
	Contact    *normalize.ContactView     `json:"contact,omitempty"`
	Err        error                      `json:"-"`
}

// View returns the section's view model.
func (c Content) View() any {
	switch c.Section {
	case SectionSite:
		return c.Site
	case SectionAbout:
		return c.About
	case SectionSkills:
		return c.Skills
	case SectionProjects:
		return c.Projects
	case SectionExperience:
		return c.Experience
	case SectionEducation:
		return c.Education
	case SectionContact:
		return c.Contact
	}
	return nil
}
