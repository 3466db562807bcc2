package normalize

import (
	"sort"

	"github.com/naveenspark/folio/pkg/domain"
)

// ProjectView is one normalized project card.
type ProjectView struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image_url"`
	Technologies []string `json:"technologies"`
	SourceURL    string   `json:"source_url,omitempty"`
	DemoURL      string   `json:"demo_url,omitempty"`
	DisplayOrder int      `json:"display_order"`
}

// Projects keeps active projects ordered by display order.
func Projects(items []domain.Project, lang domain.Lang) []ProjectView {
	out := []ProjectView{}
	for _, p := range items {
		if !p.Active {
			continue
		}
		v := ProjectView{
			ID:           p.ID,
			Title:        Pick(lang, p.TitleEN, p.TitleES),
			Description:  Pick(lang, p.DescriptionEN, p.DescriptionES),
			Image:        domain.InlineOr(p.ImageData, p.ImageURL),
			Technologies: ProcessTags(p.Technologies),
			SourceURL:    p.SourceURL,
			DisplayOrder: p.DisplayOrder,
		}
		if p.DemoURL != nil {
			v.DemoURL = *p.DemoURL
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}
