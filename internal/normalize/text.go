package normalize

import (
	"iter"
	"regexp"
	"strings"
)

var (
	brTag         = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankLine     = regexp.MustCompile(`\n\s*\n`)
	sentenceBreak = regexp.MustCompile(`[.\n]`)
)

// unifyNewlines maps escaped "\n" sequences, CRLF and <br> tags to "\n".
// Escapes go first so "<br\n>" still collapses to a single break. Passes
// repeat until nothing changes, since removing one tag can join the text
// around it into another ("<br<br>>").
func unifyNewlines(s string) string {
	for {
		next := strings.ReplaceAll(s, `\n`, "\n")
		next = strings.ReplaceAll(next, "\r\n", "\n")
		next = brTag.ReplaceAllString(next, "\n")
		if next == s {
			return s
		}
		s = next
	}
}

// ParagraphSeq yields the paragraphs of text in source order. Paragraphs are
// separated by blank lines; single line breaks inside one become spaces.
func ParagraphSeq(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}
		for _, chunk := range blankLine.Split(unifyNewlines(text), -1) {
			p := strings.TrimSpace(strings.ReplaceAll(chunk, "\n", " "))
			if p == "" {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Paragraphs materializes ParagraphSeq. The result is never nil.
func Paragraphs(text string) []string {
	return collect(ParagraphSeq(text))
}

// SentenceSeq yields trimmed fragments of text split on periods and line breaks.
func SentenceSeq(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}
		for _, frag := range sentenceBreak.Split(unifyNewlines(text), -1) {
			frag = strings.TrimSpace(frag)
			if frag == "" {
				continue
			}
			if !yield(frag) {
				return
			}
		}
	}
}

// Sentences materializes SentenceSeq. The result is never nil.
func Sentences(text string) []string {
	return collect(SentenceSeq(text))
}

func collect(seq iter.Seq[string]) []string {
	out := []string{}
	for s := range seq {
		out = append(out, s)
	}
	return out
}
