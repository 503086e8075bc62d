package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInlineSimple(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Span
	}{
		{
			name:     "plain",
			input:    "just text",
			expected: []Span{{Text: "just text"}},
		},
		{
			name:  "bold italic code",
			input: "a **b** *c* `d` e",
			expected: []Span{
				{Text: "a "},
				{Text: "b", Bold: true},
				{Text: " "},
				{Text: "c", Italic: true},
				{Text: " "},
				{Text: "d", Code: true},
				{Text: " e"},
			},
		},
		{
			name:     "underscores untouched",
			input:    "snake_case_name",
			expected: []Span{{Text: "snake_case_name"}},
		},
		{
			name:     "link untouched",
			input:    "[x](y)",
			expected: []Span{{Text: "[x](y)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitInline(tt.input, Simple))
		})
	}
}

func TestSplitInlineFull(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Span
	}{
		{
			name:  "underscore emphasis",
			input: "__strong__ and _soft_",
			expected: []Span{
				{Text: "strong", Bold: true},
				{Text: " and "},
				{Text: "soft", Italic: true},
			},
		},
		{
			name:  "link",
			input: "see [docs](https://example.com/a_b_c) now",
			expected: []Span{
				{Text: "see "},
				{Text: "docs", Link: "https://example.com/a_b_c"},
				{Text: " now"},
			},
		},
		{
			name:     "code keeps stars",
			input:    "`a*b*c`",
			expected: []Span{{Text: "a*b*c", Code: true}},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitInline(tt.input, Full))
		})
	}
}

func TestSplitInlinePreservesText(t *testing.T) {
	inputs := []string{
		"Total cost is **$1,234** per *day* using `SUM()`.",
		"mixed __a__ _b_ **c** *d* `e` [f](g)",
		"no markers at all",
	}

	for _, in := range inputs {
		spans := SplitInline(in, Full)
		stripped := PlainText(spans)
		for _, marker := range []string{"**", "__", "`", "*", "_"} {
			assert.NotContains(t, stripped, marker, in)
		}
	}
	assert.Equal(t, "Total cost is $1,234 per day using SUM().", PlainText(SplitInline(inputs[0], Simple)))
}
