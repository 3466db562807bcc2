package domain

// Profile is the owner's biographical record from /about.
// Bilingual fields come in _en/_es pairs.
type Profile struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	LastName           string    `json:"last_name"`
	BirthDate          string    `json:"birth_date,omitempty"`
	Email              string    `json:"email"`
	Location           string    `json:"location"`
	PhotoURL           string    `json:"photo_url"`
	PhotoData          *FileData `json:"photo_data,omitempty"`
	BioEN              string    `json:"bio_en"`
	BioES              string    `json:"bio_es"`
	HeroDescriptionEN  string    `json:"hero_description_en"`
	HeroDescriptionES  string    `json:"hero_description_es"`
	JobTitleEN         string    `json:"job_title_en"`
	JobTitleES         string    `json:"job_title_es"`
	NationalityEN      string    `json:"nationality_en"`
	NationalityES      string    `json:"nationality_es"`
	Language           string    `json:"language,omitempty"`
	AvailableLanguages []string  `json:"available_languages,omitempty"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}
