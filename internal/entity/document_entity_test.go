package entity

import (
	"strings"
	"testing"
)

func TestSetTitleNormalization(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		wantTitle      string
		wantNormalized string
	}{
		{"plain title", "Groceries", "Groceries", "groceries"},
		{"mixed case", "Meeting NOTES", "Meeting NOTES", "meeting notes"},
		{"surrounding whitespace", "  Recipes  ", "Recipes", "recipes"},
		{"empty title defaults", "", DefaultDocumentTitle, "untitled document"},
		{"whitespace only defaults", "   \t ", DefaultDocumentTitle, "untitled document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Document
			d.SetTitle(tt.title)

			if d.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", d.Title, tt.wantTitle)
			}
			if d.TitleNormalized != tt.wantNormalized {
				t.Errorf("TitleNormalized = %q, want %q", d.TitleNormalized, tt.wantNormalized)
			}
			if d.TitleNormalized != strings.ToLower(d.Title) {
				t.Errorf("invariant violated: %q != lower(%q)", d.TitleNormalized, d.Title)
			}
		})
	}
}

func TestAppendContent(t *testing.T) {
	d := Document{Content: "<p>first</p>"}
	d.AppendContent("<p>second</p>")
	if d.Content != "<p>first</p>"+AppendSeparator+"<p>second</p>" {
		t.Errorf("unexpected content after append: %q", d.Content)
	}

	empty := Document{}
	empty.AppendContent("<p>only</p>")
	if empty.Content != "<p>only</p>" {
		t.Errorf("append to empty document should not add a separator, got %q", empty.Content)
	}
}
