package normalize

import (
	"sort"
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

// SocialPlatform describes a known social network.
type SocialPlatform struct {
	Key           string
	Name          string
	Icon          string
	DescriptionEN string
	DescriptionES string
	// Order is the display order given to a platform that comes from an
	// individually named URL field.
	Order int
}

// SocialPlatforms is the catalogue of platforms with dedicated contact fields.
var SocialPlatforms = []SocialPlatform{
	{Key: "github", Name: "GitHub", Icon: "Github", DescriptionEN: "View repositories", DescriptionES: "Ver repositorios", Order: 1},
	{Key: "linkedin", Name: "LinkedIn", Icon: "Linkedin", DescriptionEN: "Connect professionally", DescriptionES: "Conectar profesionalmente", Order: 2},
	{Key: "twitter", Name: "Twitter", Icon: "Twitter", DescriptionEN: "Follow on Twitter", DescriptionES: "Seguir en Twitter", Order: 3},
	{Key: "instagram", Name: "Instagram", Icon: "Instagram", DescriptionEN: "Follow on Instagram", DescriptionES: "Seguir en Instagram", Order: 4},
}

// Platform looks up a catalogue entry by name in any casing.
func Platform(name string) (SocialPlatform, bool) {
	key := iconKey(name)
	for _, p := range SocialPlatforms {
		if p.Key == key {
			return p, true
		}
	}
	return SocialPlatform{}, false
}

// ContactView is the normalized contact section.
type ContactView struct {
	CV      string       `json:"cv_url,omitempty"`
	Socials []SocialView `json:"social_networks"`
}

// SocialView is one social link.
type SocialView struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	Icon         string `json:"icon"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Contact merges the explicit social network list with individually named
// URL fields. A named URL is only added when the list has no active entry for
// that platform. The result is ordered by display order.
func Contact(c *domain.Contact, lang domain.Lang) ContactView {
	view := ContactView{Socials: []SocialView{}}
	if c == nil {
		return view
	}
	cvURL := ""
	if c.CVURL != nil {
		cvURL = *c.CVURL
	}
	view.CV = domain.InlineOr(c.CVData, cvURL)

	seen := map[string]bool{}
	for _, sn := range c.SocialNetworks {
		if !sn.Active || strings.TrimSpace(sn.URL) == "" {
			continue
		}
		seen[iconKey(sn.Platform)] = true
		icon := sn.IconName
		if strings.TrimSpace(icon) == "" {
			icon = sn.Platform
		}
		v := SocialView{
			Platform:     sn.Platform,
			URL:          sn.URL,
			Icon:         ResolveSocialIcon(icon),
			DisplayOrder: sn.DisplayOrder,
		}
		if p, ok := Platform(sn.Platform); ok {
			v.Description = Pick(lang, p.DescriptionEN, p.DescriptionES)
		}
		view.Socials = append(view.Socials, v)
	}

	named := map[string]*string{
		"github":    c.GitHubURL,
		"linkedin":  c.LinkedInURL,
		"twitter":   c.TwitterURL,
		"instagram": c.InstagramURL,
	}
	for _, p := range SocialPlatforms {
		u := named[p.Key]
		if u == nil || strings.TrimSpace(*u) == "" || seen[p.Key] {
			continue
		}
		view.Socials = append(view.Socials, SocialView{
			Platform:     p.Name,
			URL:          strings.TrimSpace(*u),
			Icon:         p.Icon,
			Description:  Pick(lang, p.DescriptionEN, p.DescriptionES),
			DisplayOrder: p.Order,
		})
	}

	sort.SliceStable(view.Socials, func(i, j int) bool {
		return view.Socials[i].DisplayOrder < view.Socials[j].DisplayOrder
	})
	return view
}
