package normalize

import (
	"sort"
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

// ExperienceView is one normalized job entry.
type ExperienceView struct {
	ID           int      `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	DisplayOrder int      `json:"display_order"`
}

// EducationView is one normalized education entry.
type EducationView struct {
	ID           int      `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	DisplayOrder int      `json:"display_order"`
}

// Experience keeps active entries ordered by display order.
func Experience(items []domain.Experience, lang domain.Lang) []ExperienceView {
	out := []ExperienceView{}
	for _, e := range items {
		if !e.Active {
			continue
		}
		out = append(out, ExperienceView{
			ID:           e.ID,
			Position:     Pick(lang, e.PositionEN, e.PositionES),
			Company:      e.Company,
			Location:     e.Location,
			Period:       FormatPeriod(e.StartDate, e.EndDate, lang),
			Current:      ongoing(e.EndDate),
			Description:  Sentences(Pick(lang, e.DescriptionEN, e.DescriptionES)),
			DisplayOrder: e.DisplayOrder,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// Education keeps active entries ordered by display order. Entries without a
// description list the degree as their only line.
func Education(items []domain.Education, lang domain.Lang) []EducationView {
	out := []EducationView{}
	for _, e := range items {
		if !e.Active {
			continue
		}
		degree := Pick(lang, e.DegreeEN, e.DegreeES)
		desc := Sentences(Pick(lang, e.DescriptionEN, e.DescriptionES))
		if len(desc) == 0 && strings.TrimSpace(degree) != "" {
			desc = []string{degree}
		}
		out = append(out, EducationView{
			ID:           e.ID,
			Degree:       degree,
			Institution:  e.Institution,
			Location:     e.Location,
			Period:       FormatPeriod(e.StartDate, e.EndDate, lang),
			Current:      ongoing(e.EndDate),
			Description:  desc,
			DisplayOrder: e.DisplayOrder,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}
