package domain

// SkillsResponse is the /skills payload.
type SkillsResponse struct {
	Categories []SkillCategory `json:"categories"`
}

// SkillCategory groups skills under a label and icon.
type SkillCategory struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	IconName string  `json:"icon_name"`
	Skills   []Skill `json:"skills"`
}

// Skill is a single named skill. Color is nil when the backend has no explicit color.
type Skill struct {
	Name     string  `json:"name"`
	IconName string  `json:"icon_name"`
	Color    *string `json:"color"`
}
