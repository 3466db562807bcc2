package normalize

import (
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

// DefaultSkillColor is used for skills with no explicit or known color.
const DefaultSkillColor = "text-gray-600"

var skillColors = map[string]string{
	"JavaScript":       "text-yellow-500",
	"Python":           "text-blue-600",
	"FastAPI":          "text-green-600",
	"Git":              "text-orange-600",
	"Docker":           "text-blue-600",
	"Machine Learning": "text-purple-600",
	"Communication":    "text-blue-500",
}

// SkillsView is the normalized skills section.
type SkillsView struct {
	Categories []SkillCategoryView `json:"categories"`
}

// SkillCategoryView is one tab of skills.
type SkillCategoryView struct {
	ID     string      `json:"id"`
	Label  string      `json:"label"`
	Icon   string      `json:"icon"`
	Skills []SkillView `json:"skills"`
}

// SkillView is one skill. When Custom is true Color is a CSS color value,
// otherwise a utility class name.
type SkillView struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Custom bool   `json:"custom_color"`
}

// SkillColor returns the color for a skill and whether it is a literal CSS
// color (hex, rgb or hsl) instead of a class name.
func SkillColor(name string, color *string) (string, bool) {
	if color != nil {
		if c := strings.TrimSpace(*color); c != "" {
			return c, isCSSColor(c)
		}
	}
	if c, ok := skillColors[name]; ok {
		return c, false
	}
	return DefaultSkillColor, false
}

func isCSSColor(c string) bool {
	return strings.HasPrefix(c, "#") || strings.HasPrefix(c, "rgb") || strings.HasPrefix(c, "hsl")
}

// Skills normalizes the skills payload. Category and skill order is kept.
func Skills(resp *domain.SkillsResponse) SkillsView {
	view := SkillsView{Categories: []SkillCategoryView{}}
	if resp == nil {
		return view
	}
	for _, cat := range resp.Categories {
		cv := SkillCategoryView{
			ID:     cat.ID,
			Label:  cat.Label,
			Icon:   ResolveIcon(cat.IconName),
			Skills: make([]SkillView, 0, len(cat.Skills)),
		}
		for _, s := range cat.Skills {
			color, custom := SkillColor(s.Name, s.Color)
			cv.Skills = append(cv.Skills, SkillView{
				Name:   s.Name,
				Icon:   ResolveIcon(s.IconName),
				Color:  color,
				Custom: custom,
			})
		}
		view.Categories = append(view.Categories, cv)
	}
	return view
}
