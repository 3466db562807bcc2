package tui

import (
	"fmt"
	"strings"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/pkg/domain"
)

// item is a selectable row. link is opened with enter; value is what c copies.
type item struct {
	link  string
	value string
}

// sectionItems lists the selectable rows of a loaded section in display order.
func sectionItems(c portfolio.Content) []item {
	var items []item
	switch c.Section {
	case portfolio.SectionAbout:
		if c.About == nil {
			return nil
		}
		for _, card := range c.About.Cards {
			link := card.Link
			if link == "#" {
				link = ""
			}
			items = append(items, item{link: link, value: card.Value})
		}
	case portfolio.SectionProjects:
		for _, p := range c.Projects {
			link := p.DemoURL
			if link == "" {
				link = p.SourceURL
			}
			items = append(items, item{link: link, value: link})
		}
	case portfolio.SectionContact:
		if c.Contact == nil {
			return nil
		}
		for _, s := range c.Contact.Socials {
			items = append(items, item{link: s.URL, value: s.URL})
		}
	}
	return items
}

// renderSection renders a loaded section. cursor indexes sectionItems.
func renderSection(c portfolio.Content, lang domain.Lang, cursor, width int) string {
	switch c.Section {
	case portfolio.SectionAbout:
		return renderAbout(c.About, cursor, width)
	case portfolio.SectionSkills:
		return renderSkills(c.Skills, width)
	case portfolio.SectionProjects:
		return renderProjects(c.Projects, cursor, width)
	case portfolio.SectionExperience:
		return renderExperience(c.Experience, width)
	case portfolio.SectionEducation:
		return renderEducation(c.Education, width)
	case portfolio.SectionContact:
		return renderContact(c.Contact, lang, cursor, width)
	}
	return ""
}

func cursorPrefix(selected bool) string {
	if selected {
		return accentStyle.Render("> ")
	}
	return "  "
}

func emptyView() string {
	return "\n  " + dimStyle.Render(tr("empty")) + "\n"
}

func renderAbout(v *portfolio.AboutContent, cursor, width int) string {
	if v == nil {
		return emptyView()
	}
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", headingStyle.Render(v.Hero.FullName))
	if v.About.Title != "" {
		fmt.Fprintf(&b, "  %s\n", selectedStyle.Render(v.About.Title))
	}
	if v.About.Nationality != "" {
		fmt.Fprintf(&b, "  %s\n", metaStyle.Render(v.About.Nationality))
	}
	if v.Hero.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", noticeStyle.Render(wrap(v.Hero.Description, width, "  ")))
	}
	for _, p := range v.About.Description {
		fmt.Fprintf(&b, "\n%s\n", normalStyle.Render(wrap(p, width, "  ")))
	}
	if len(v.Cards) > 0 {
		b.WriteString("\n")
		for i, card := range v.Cards {
			label := fmt.Sprintf("%-9s", card.Type)
			value := normalStyle.Render(card.Value)
			if i == cursor {
				value = selectedStyle.Render(card.Value)
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursorPrefix(i == cursor), metaStyle.Render(label), value)
		}
	}
	return b.String()
}

func renderSkills(v *normalize.SkillsView, width int) string {
	if v == nil || len(v.Categories) == 0 {
		return emptyView()
	}
	var b strings.Builder
	for _, cat := range v.Categories {
		label := cat.Label
		if label == "" {
			label = cat.ID
		}
		fmt.Fprintf(&b, "\n  %s %s\n", metaStyle.Render("["+cat.Icon+"]"), sectionHeaderStyle.Render(label))
		var line strings.Builder
		lineWidth := 4
		line.WriteString("    ")
		for i, s := range cat.Skills {
			cell := SkillStyle(s).Render(s.Name)
			w := len([]rune(s.Name)) + 3
			if i > 0 && lineWidth+w > width {
				b.WriteString(line.String() + "\n")
				line.Reset()
				line.WriteString("    ")
				lineWidth = 4
			}
			line.WriteString(cell + dimStyle.Render(" · "))
			lineWidth += w
		}
		b.WriteString(strings.TrimSuffix(line.String(), dimStyle.Render(" · ")) + "\n")
	}
	return b.String()
}

func renderProjects(list []normalize.ProjectView, cursor, width int) string {
	if len(list) == 0 {
		return emptyView()
	}
	var b strings.Builder
	for i, p := range list {
		selected := i == cursor
		title := normalStyle.Bold(true).Render(p.Title)
		if selected {
			title = selectedStyle.Render(p.Title)
		}
		fmt.Fprintf(&b, "\n%s%s\n", cursorPrefix(selected), title)
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n", dimStyle.Render(wrap(p.Description, width, "    ")))
		}
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&b, "    %s\n", techStyle.Render(strings.Join(p.Technologies, " · ")))
		}
		var links []string
		if p.SourceURL != "" {
			links = append(links, metaStyle.Render(tr("source")+" ")+linkStyle.Render(p.SourceURL))
		}
		if p.DemoURL != "" {
			links = append(links, metaStyle.Render(tr("demo")+" ")+linkStyle.Render(p.DemoURL))
		}
		if len(links) > 0 {
			fmt.Fprintf(&b, "    %s\n", strings.Join(links, "  "))
		}
	}
	return b.String()
}

func renderPeriod(period string, current bool) string {
	s := metaStyle.Render(period)
	if current {
		s += " " + accentStyle.Render("● "+tr("current"))
	}
	return s
}

func renderSentences(b *strings.Builder, sentences []string, width int) {
	for _, s := range sentences {
		fmt.Fprintf(b, "%s\n", dimStyle.Render(wrap("- "+s, width, "    ")))
	}
}

func renderExperience(list []normalize.ExperienceView, width int) string {
	if len(list) == 0 {
		return emptyView()
	}
	var b strings.Builder
	for _, e := range list {
		fmt.Fprintf(&b, "\n  %s %s %s\n", selectedStyle.Render(e.Position), metaStyle.Render("@"), normalStyle.Render(e.Company))
		where := e.Location
		if where != "" {
			where += "  "
		}
		fmt.Fprintf(&b, "  %s%s\n", metaStyle.Render(where), renderPeriod(e.Period, e.Current))
		renderSentences(&b, e.Description, width)
	}
	return b.String()
}

func renderEducation(list []normalize.EducationView, width int) string {
	if len(list) == 0 {
		return emptyView()
	}
	var b strings.Builder
	for _, e := range list {
		fmt.Fprintf(&b, "\n  %s\n", selectedStyle.Render(e.Degree))
		fmt.Fprintf(&b, "  %s\n", normalStyle.Render(e.Institution))
		where := e.Location
		if where != "" {
			where += "  "
		}
		fmt.Fprintf(&b, "  %s%s\n", metaStyle.Render(where), renderPeriod(e.Period, e.Current))
		renderSentences(&b, e.Description, width)
	}
	return b.String()
}

// socialDescription localizes known platforms at render time so a language
// switch does not need a re-fetch.
func socialDescription(s normalize.SocialView, lang domain.Lang) string {
	if p, ok := normalize.Platform(s.Platform); ok {
		return normalize.Pick(lang, p.DescriptionEN, p.DescriptionES)
	}
	return s.Description
}

func renderContact(v *normalize.ContactView, lang domain.Lang, cursor, width int) string {
	if v == nil || (len(v.Socials) == 0 && v.CV == "") {
		return emptyView()
	}
	var b strings.Builder
	for i, s := range v.Socials {
		selected := i == cursor
		name := normalStyle.Render(s.Platform)
		if selected {
			name = selectedStyle.Render(s.Platform)
		}
		fmt.Fprintf(&b, "\n%s%s %s\n", cursorPrefix(selected), metaStyle.Render("["+s.Icon+"]"), name)
		fmt.Fprintf(&b, "    %s\n", linkStyle.Render(truncStr(s.URL, max(width-4, 20))))
		if d := socialDescription(s, lang); d != "" {
			fmt.Fprintf(&b, "    %s\n", dimStyle.Render(d))
		}
	}
	if v.CV != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", metaStyle.Render("CV"), dimStyle.Render("(v)"))
	}
	return b.String()
}
