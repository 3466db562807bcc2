package portfolio

import (
	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/pkg/domain"
)

func ptr(s string) *string { return &s }

// Sample payloads shown when a section cannot be fetched. They go through the
// same normalizers as live data.
var (
	sampleSite = domain.SiteConfig{
		SiteTitle:       "Portfolio",
		BrandName:       "Portfolio",
		MetaDescription: "Personal portfolio",
	}

	sampleProfile = domain.Profile{
		Name:              "Portfolio",
		LastName:          "Owner",
		JobTitleEN:        "Software Developer",
		JobTitleES:        "Desarrollador de Software",
		BioEN:             "Profile details are temporarily unavailable.\n\nPlease check back in a moment.",
		BioES:             "Los datos del perfil no están disponibles en este momento.\n\nVuelve a intentarlo en unos instantes.",
		HeroDescriptionEN: "Building reliable software for the web.",
		HeroDescriptionES: "Construyendo software fiable para la web.",
	}

	sampleSkills = domain.SkillsResponse{Categories: []domain.SkillCategory{
		{ID: "languages", Label: "Languages", IconName: "code", Skills: []domain.Skill{
			{Name: "JavaScript", IconName: "code"},
			{Name: "Python", IconName: "terminal"},
		}},
		{ID: "tools", Label: "Tools", IconName: "wrench", Skills: []domain.Skill{
			{Name: "Git", IconName: "git-branch"},
			{Name: "Docker", IconName: "box"},
		}},
		{ID: "soft", Label: "Soft skills", IconName: "users", Skills: []domain.Skill{
			{Name: "Communication", IconName: "message-square"},
		}},
	}}

	sampleProjects = []domain.Project{
		{
			ID:            1,
			TitleEN:       "Portfolio site",
			TitleES:       "Sitio de portafolio",
			DescriptionEN: "Personal site backed by a content API.",
			DescriptionES: "Sitio personal respaldado por una API de contenido.",
			Technologies:  domain.TagText("Go, TypeScript"),
			DisplayOrder:  1,
			Active:        true,
		},
	}

	sampleExperience = []domain.Experience{
		{
			ID:            1,
			Company:       "Example Co.",
			PositionEN:    "Software Developer",
			PositionES:    "Desarrollador de Software",
			DescriptionEN: "Experience details are temporarily unavailable.",
			DescriptionES: "Los detalles de experiencia no están disponibles.",
			StartDate:     "2022/01/01",
			DisplayOrder:  1,
			Active:        true,
		},
	}

	sampleEducation = []domain.Education{
		{
			ID:           1,
			Institution:  "Example University",
			DegreeEN:     "Computer Science",
			DegreeES:     "Ingeniería Informática",
			StartDate:    "2016/09/01",
			EndDate:      ptr("2020/06/30"),
			DisplayOrder: 1,
			Active:       true,
		},
	}

	sampleContact = domain.Contact{
		GitHubURL: ptr("https://github.com"),
	}
)

// Fallback returns sample content for s, marked as Fallback.
func Fallback(s Section, lang domain.Lang) Content {
	c := Content{Section: s, Lang: lang, Fallback: true}
	switch s {
	case SectionSite:
		v := normalize.Site(&sampleSite, "")
		c.Site = &v
	case SectionAbout:
		p := sampleProfile
		c.About = aboutContent(&p, lang)
	case SectionSkills:
		v := normalize.Skills(&sampleSkills)
		c.Skills = &v
	case SectionProjects:
		c.Projects = normalize.Projects(sampleProjects, lang)
	case SectionExperience:
		c.Experience = normalize.Experience(sampleExperience, lang)
	case SectionEducation:
		c.Education = normalize.Education(sampleEducation, lang)
	case SectionContact:
		v := normalize.Contact(&sampleContact, lang)
		c.Contact = &v
	}
	return c
}

// Notice is the one-line message shown above fallback content.
func Notice(lang domain.Lang) string {
	if lang == domain.Spanish {
		return "No se pudo cargar el contenido. Mostrando datos de ejemplo."
	}
	return "Could not load content. Showing sample data."
}
