package tui

import (
	"strings"
	"testing"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/pkg/domain"
)

func TestSectionItems(t *testing.T) {
	about := portfolio.Content{Section: portfolio.SectionAbout, About: &portfolio.AboutContent{
		Cards: []normalize.ContactInfo{
			{Type: normalize.ContactEmail, Value: "ada@example.com", Link: "mailto:ada@example.com"},
			{Type: normalize.ContactLocation, Value: "London", Link: "#"},
		},
	}}
	items := sectionItems(about)
	if len(items) != 2 {
		t.Fatalf("about items = %d, want 2", len(items))
	}
	if items[0].link != "mailto:ada@example.com" || items[0].value != "ada@example.com" {
		t.Errorf("email item = %+v", items[0])
	}
	if items[1].link != "" || items[1].value != "London" {
		t.Errorf("location item = %+v, want no link", items[1])
	}

	projects := portfolio.Content{Section: portfolio.SectionProjects, Projects: []normalize.ProjectView{
		{Title: "A", SourceURL: "https://src", DemoURL: "https://demo"},
		{Title: "B", SourceURL: "https://src-b"},
		{Title: "C"},
	}}
	got := sectionItems(projects)
	wantLinks := []string{"https://demo", "https://src-b", ""}
	for i, want := range wantLinks {
		if got[i].link != want {
			t.Errorf("project %d link = %q, want %q", i, got[i].link, want)
		}
	}

	if items := sectionItems(portfolio.Content{Section: portfolio.SectionSkills}); len(items) != 0 {
		t.Errorf("skills should have no selectable items, got %d", len(items))
	}
}

func TestRenderSectionEmpty(t *testing.T) {
	Document{}.SetLang(domain.English)
	for _, s := range portfolio.Sections {
		t.Run(string(s), func(t *testing.T) {
			view := renderSection(portfolio.Content{Section: s}, domain.English, 0, 80)
			if !strings.Contains(view, "nothing here yet") {
				t.Errorf("empty %s view = %q", s, view)
			}
		})
	}
}

func TestRenderSkills(t *testing.T) {
	v := &normalize.SkillsView{Categories: []normalize.SkillCategoryView{
		{ID: "lang", Label: "Languages", Icon: "Code", Skills: []normalize.SkillView{
			{Name: "Go", Color: "#00ADD8", Custom: true},
			{Name: "Python", Color: "text-blue-600"},
		}},
		{ID: "tools", Icon: "Wrench", Skills: []normalize.SkillView{{Name: "Git"}}},
	}}
	view := renderSkills(v, 80)
	for _, want := range []string{"Languages", "Go", "Python", "tools", "Git", "[Code]"} {
		if !strings.Contains(view, want) {
			t.Errorf("skills view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderSkillsWrapsLongRows(t *testing.T) {
	var skills []normalize.SkillView
	for _, n := range []string{"JavaScript", "TypeScript", "Python", "Rust", "Haskell", "Erlang"} {
		skills = append(skills, normalize.SkillView{Name: n})
	}
	v := &normalize.SkillsView{Categories: []normalize.SkillCategoryView{{Label: "All", Skills: skills}}}
	view := renderSkills(v, 30)
	if lines := strings.Count(strings.TrimSpace(view), "\n"); lines < 3 {
		t.Errorf("expected skills to wrap at width 30, got %d lines:\n%s", lines+1, view)
	}
}

func TestRenderTimeline(t *testing.T) {
	Document{}.SetLang(domain.English)
	exp := []normalize.ExperienceView{{
		Position:    "Engineer",
		Company:     "Analytical Engines",
		Location:    "London",
		Period:      "January 2020 - Present",
		Current:     true,
		Description: []string{"Built the mill", "Wrote the notes"},
	}}
	view := renderExperience(exp, 80)
	for _, want := range []string{"Engineer", "Analytical Engines", "January 2020 - Present", "current", "- Built the mill", "- Wrote the notes"} {
		if !strings.Contains(view, want) {
			t.Errorf("experience view missing %q:\n%s", want, view)
		}
	}

	edu := []normalize.EducationView{{Degree: "Mathematics", Institution: "Home", Period: "1830 - 1835"}}
	view = renderEducation(edu, 80)
	if !strings.Contains(view, "Mathematics") || strings.Contains(view, "current") {
		t.Errorf("education view = %q", view)
	}
}

func TestRenderContactLocalizesKnownPlatforms(t *testing.T) {
	v := &normalize.ContactView{
		CV: "https://example.com/cv.pdf",
		Socials: []normalize.SocialView{
			{Platform: "GitHub", URL: "https://github.com/ada", Icon: "Github", Description: "View repositories"},
			{Platform: "Mastodon", URL: "https://mastodon.social/@ada", Icon: "Mail", Description: "Toots"},
		},
	}
	view := renderContact(v, domain.Spanish, 0, 80)
	for _, want := range []string{"Ver repositorios", "Toots", "https://github.com/ada", "CV"} {
		if !strings.Contains(view, want) {
			t.Errorf("contact view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "View repositories") {
		t.Error("known platform description was not localized")
	}
}

func TestRenderProjectsMarksCursor(t *testing.T) {
	list := []normalize.ProjectView{
		{Title: "First", Technologies: []string{"Go", "SQL"}},
		{Title: "Second", SourceURL: "https://github.com/ada/second"},
	}
	view := renderProjects(list, 1, 80)
	if !strings.Contains(view, "> Second") {
		t.Errorf("cursor not on second project:\n%s", view)
	}
	if !strings.Contains(view, "Go · SQL") {
		t.Errorf("technologies missing:\n%s", view)
	}
}
