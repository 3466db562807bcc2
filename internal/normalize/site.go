package normalize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/naveenspark/folio/pkg/domain"
)

var plainPolicy = bluemonday.StrictPolicy()

// PlainText strips markup from s and decodes entities.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}

// SiteView is the normalized branding and SEO metadata.
type SiteView struct {
	Title              string   `json:"title"`
	Brand              string   `json:"brand"`
	Description        string   `json:"description"`
	Keywords           []string `json:"keywords"`
	Favicon            string   `json:"favicon,omitempty"`
	OGTitle            string   `json:"og_title,omitempty"`
	OGDescription      string   `json:"og_description,omitempty"`
	OGImage            string   `json:"og_image,omitempty"`
	OGURL              string   `json:"og_url,omitempty"`
	OGType             string   `json:"og_type,omitempty"`
	TwitterCard        string   `json:"twitter_card,omitempty"`
	TwitterTitle       string   `json:"twitter_title,omitempty"`
	TwitterDescription string   `json:"twitter_description,omitempty"`
	TwitterImage       string   `json:"twitter_image,omitempty"`
}

// Site normalizes the site config. File paths are resolved against baseURL
// unless inline data is present.
func Site(cfg *domain.SiteConfig, baseURL string) SiteView {
	if cfg == nil {
		return SiteView{Keywords: []string{}}
	}
	v := SiteView{
		Title:              PlainText(cfg.SiteTitle),
		Brand:              PlainText(cfg.BrandName),
		Description:        PlainText(cfg.MetaDescription),
		Keywords:           SplitTags(PlainText(cfg.MetaKeywords)),
		Favicon:            domain.InlineOr(cfg.FaviconData, fileURL(baseURL, cfg.FaviconFile)),
		OGTitle:            PlainText(cfg.OGTitle),
		OGDescription:      PlainText(cfg.OGDescription),
		OGImage:            domain.InlineOr(cfg.OGImageData, fileURL(baseURL, cfg.OGImageFile)),
		OGType:             cfg.OGType,
		TwitterCard:        cfg.TwitterCard,
		TwitterTitle:       PlainText(cfg.TwitterTitle),
		TwitterDescription: PlainText(cfg.TwitterDescription),
		TwitterImage:       domain.InlineOr(cfg.TwitterImageData, fileURL(baseURL, cfg.TwitterImageFile)),
	}
	if cfg.OGURL != nil {
		v.OGURL = *cfg.OGURL
	}
	return v
}

func fileURL(baseURL string, path *string) string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return ""
	}
	p := strings.TrimSpace(*path)
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "data:") {
		return p
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(p, "/")
}
