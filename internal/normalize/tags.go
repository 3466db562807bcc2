package normalize

import (
	"regexp"
	"slices"
	"strings"

	"github.com/naveenspark/folio/pkg/domain"
)

var tagSep = regexp.MustCompile(`[,;]`)

// SplitTags splits a delimiter-separated tag string on commas or semicolons,
// trimming pieces and dropping empty ones.
func SplitTags(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, piece := range tagSep.Split(s, -1) {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// ProcessTags returns a copy of list-shaped tags unchanged and splits
// string-shaped tags with SplitTags.
func ProcessTags(t domain.Tags) []string {
	if t.IsList {
		if t.List == nil {
			return []string{}
		}
		return slices.Clone(t.List)
	}
	return SplitTags(t.Text)
}
