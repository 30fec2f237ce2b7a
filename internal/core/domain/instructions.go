package domain

import (
	"regexp"
	"strings"
)

// Segment is a run of instruction text, optionally carrying a link. Href
// is empty for plain text.
type Segment struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// Paragraph is one paragraph of instruction prose, split into plain-text
// and link segments.
type Paragraph []Segment

var (
	paragraphBreakRe = regexp.MustCompile(`(?i)(?:<br\s*/?>\s*)+`)
	anchorRe         = regexp.MustCompile(`(?is)<a\s+href=["']([^"']+)["'][^>]*>(.*?)</a>`)
)

// SplitIntoParagraphs splits instruction text on runs of <br> tags,
// trimming each paragraph and dropping empty ones.
func SplitIntoParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphBreakRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// ParseParagraph converts a paragraph's embedded <a href> tags into typed
// link segments, leaving the rest as plain text.
func ParseParagraph(paragraph string) Paragraph {
	var segments Paragraph
	last := 0
	for _, m := range anchorRe.FindAllStringSubmatchIndex(paragraph, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: paragraph[last:m[0]]})
		}
		segments = append(segments, Segment{
			Text: paragraph[m[4]:m[5]],
			Href: paragraph[m[2]:m[3]],
		})
		last = m[1]
	}
	if last < len(paragraph) {
		segments = append(segments, Segment{Text: paragraph[last:]})
	}
	if len(segments) == 0 {
		segments = Paragraph{{Text: paragraph}}
	}
	return segments
}

// InstructionParagraphs renders instruction text as paragraph-split prose
// with typed links, ready for page rendering.
func InstructionParagraphs(text string) []Paragraph {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	var out []Paragraph
	for _, p := range SplitIntoParagraphs(trimmed) {
		out = append(out, ParseParagraph(p))
	}
	return out
}
