package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback icons for unknown names.
const (
	DefaultIcon       = "Code"
	DefaultSocialIcon = "Mail"
)

var wordSep = regexp.MustCompile(`[-_\s]+`)

// ToPascalCase joins the words of a kebab, snake or space separated name,
// upper-casing the first letter of each and lower-casing the rest. An already
// PascalCase input is treated as one word: "BookOpen" becomes "Bookopen".
func ToPascalCase(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, word := range wordSep.Split(strings.TrimSpace(s), -1) {
		if word == "" {
			continue
		}
		b.WriteString(caser.String(word))
	}
	return b.String()
}

// icons maps an icon key (lower case, separators removed) to its identifier.
var icons = map[string]string{
	"award":         "Award",
	"bookopen":      "BookOpen",
	"box":           "Box",
	"brain":         "Brain",
	"briefcase":     "Briefcase",
	"cloud":         "Cloud",
	"code":          "Code",
	"code2":         "Code2",
	"cpu":           "Cpu",
	"database":      "Database",
	"download":      "Download",
	"externallink":  "ExternalLink",
	"filetext":      "FileText",
	"gitbranch":     "GitBranch",
	"github":        "Github",
	"globe":         "Globe",
	"graduationcap": "GraduationCap",
	"heart":         "Heart",
	"instagram":     "Instagram",
	"languages":     "Languages",
	"layers":        "Layers",
	"layout":        "Layout",
	"lightbulb":     "Lightbulb",
	"linkedin":      "Linkedin",
	"mail":          "Mail",
	"mappin":        "MapPin",
	"messagesquare": "MessageSquare",
	"monitor":       "Monitor",
	"moon":          "Moon",
	"palette":       "Palette",
	"phone":         "Phone",
	"rocket":        "Rocket",
	"server":        "Server",
	"settings":      "Settings",
	"shield":        "Shield",
	"smartphone":    "Smartphone",
	"star":          "Star",
	"sun":           "Sun",
	"terminal":      "Terminal",
	"twitter":       "Twitter",
	"user":          "User",
	"users":         "Users",
	"wrench":        "Wrench",
	"zap":           "Zap",
}

func iconKey(name string) string {
	return strings.ToLower(wordSep.ReplaceAllString(strings.TrimSpace(name), ""))
}

// LookupIcon returns the known icon for name in any casing or separator style.
func LookupIcon(name string) (string, bool) {
	id, ok := icons[iconKey(name)]
	return id, ok
}

// ResolveIcon returns the known icon for name, or DefaultIcon.
func ResolveIcon(name string) string {
	if id, ok := LookupIcon(name); ok {
		return id
	}
	return DefaultIcon
}

// ResolveSocialIcon returns the known icon for name, or DefaultSocialIcon.
func ResolveSocialIcon(name string) string {
	if id, ok := LookupIcon(name); ok {
		return id
	}
	return DefaultSocialIcon
}
