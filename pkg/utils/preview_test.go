package utils

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "just a note",
			want: "just a note",
		},
		{
			name: "tags become separators",
			in:   "<p>first</p><p>second</p>",
			want: "first second",
		},
		{
			name: "entities decoded",
			in:   "bread &amp; butter&nbsp;list",
			want: "bread & butter list",
		},
		{
			name: "nested markup flattened",
			in:   "<ul><li><b>milk</b></li><li>eggs</li></ul>",
			want: "milk eggs",
		},
		{
			name: "whitespace collapsed",
			in:   "a\n\n  b\t c",
			want: "a b c",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StripHTML(tc.in)
			if got != tc.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPreviewTruncation(t *testing.T) {
	long := "<p>" + strings.Repeat("x", PreviewMaxLen+50) + "</p>"
	got := Preview(long)
	if len([]rune(got)) != PreviewMaxLen {
		t.Errorf("preview length = %d, want %d", len([]rune(got)), PreviewMaxLen)
	}

	short := Preview("<p>short</p>")
	if short != "short" {
		t.Errorf("preview = %q, want %q", short, "short")
	}

	multibyte := strings.Repeat("é", PreviewMaxLen+10)
	got = Preview(multibyte)
	if len([]rune(got)) != PreviewMaxLen {
		t.Errorf("multibyte preview length = %d, want %d", len([]rune(got)), PreviewMaxLen)
	}
}
