package domain

// Experience is a job entry from /experience. Dates arrive as YYYY/MM/DD;
// a nil EndDate means the position is ongoing.
type Experience struct {
	ID                 int      `json:"id"`
	Company            string   `json:"company"`
	PositionEN         string   `json:"position_en"`
	PositionES         string   `json:"position_es"`
	DescriptionEN      string   `json:"description_en"`
	DescriptionES      string   `json:"description_es"`
	StartDate          string   `json:"start_date"`
	EndDate            *string  `json:"end_date"`
	Location           string   `json:"location"`
	DisplayOrder       int      `json:"display_order"`
	Active             bool     `json:"activo"`
	Language           string   `json:"language,omitempty"`
	AvailableLanguages []string `json:"available_languages,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

// Education is a degree or certification entry from /education.
type Education struct {
	ID            int     `json:"id"`
	Institution   string  `json:"institution"`
	Location      string  `json:"location"`
	DegreeEN      string  `json:"degree_en"`
	DegreeES      string  `json:"degree_es"`
	DescriptionEN string  `json:"description_en,omitempty"`
	DescriptionES string  `json:"description_es,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	DisplayOrder  int     `json:"display_order"`
	Active        bool    `json:"activo"`
	Language      string  `json:"language,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
