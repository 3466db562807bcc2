package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naveenspark/folio/pkg/domain"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b, ,c", []string{"a", "b", "c"}},
		{"Go; React, Vue", []string{"Go", "React", "Vue"}},
		{"single", []string{"single"}},
		{"   ", []string{}},
		{"", []string{}},
		{",;,", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitTags(tt.in), "SplitTags(%q)", tt.in)
	}
}

func TestProcessTags(t *testing.T) {
	list := domain.TagList("Go", " spaced ", "")
	got := ProcessTags(list)
	assert.Equal(t, []string{"Go", " spaced ", ""}, got, "list input is returned unchanged")

	got[0] = "mutated"
	assert.Equal(t, "Go", list.List[0], "ProcessTags must not alias its input")

	assert.Equal(t, []string{}, ProcessTags(domain.Tags{IsList: true}))
	assert.Equal(t, []string{}, ProcessTags(domain.Tags{}))
	assert.Equal(t, []string{"Docker", "K8s"}, ProcessTags(domain.TagText("Docker ; K8s")))
}

func TestProcessTagsIdempotent(t *testing.T) {
	for _, in := range []string{"a, b, ,c", "Go;Rust", "", "x"} {
		first := ProcessTags(domain.TagText(in))
		again := ProcessTags(domain.TagList(first...))
		assert.Equal(t, first, again, "input %q", in)
	}
}
