package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Project is a portfolio entry from /projects.
type Project struct {
	ID            int       `json:"id"`
	TitleEN       string    `json:"title_en"`
	TitleES       string    `json:"title_es"`
	DescriptionEN string    `json:"description_en"`
	DescriptionES string    `json:"description_es"`
	ImageURL      string    `json:"image_url"`
	ImageData     *FileData `json:"image_data,omitempty"`
	Technologies  Tags      `json:"technologies"`
	SourceURL     string    `json:"source_url"`
	DemoURL       *string   `json:"demo_url"`
	DisplayOrder  int       `json:"display_order"`
	Active        bool      `json:"activa"`
	Language      string    `json:"language,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

// Tags is a technology list the API sends either as a JSON array or as one
// delimiter-separated string.
type Tags struct {
	List   []string
	Text   string
	IsList bool
}

// TagList builds Tags that arrived as an array.
func TagList(items ...string) Tags {
	return Tags{List: items, IsList: true}
}

// TagText builds Tags that arrived as a string.
func TagText(s string) Tags {
	return Tags{Text: s}
}

func (t *Tags) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = Tags{}
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return fmt.Errorf("domain.Tags: %w", err)
		}
		*t = Tags{List: list, IsList: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("domain.Tags: %w", err)
	}
	*t = Tags{Text: s}
	return nil
}

func (t Tags) MarshalJSON() ([]byte, error) {
	if t.IsList {
		if t.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(t.List)
	}
	return json.Marshal(t.Text)
}
