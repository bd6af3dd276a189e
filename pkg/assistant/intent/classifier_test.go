package intent

import (
	"errors"
	"testing"
)

func TestClassifyPriorityOrder(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		state     Context
		wantKind  Kind
		wantTitle string
		wantIndex int
	}{
		{
			name:      "explicit create beats confirm while create pending",
			utterance: "create new doc called Bar",
			state:     Context{HasPendingNote: true, HasPendingCreate: true},
			wantKind:  KindExplicitCreate,
			wantTitle: "Bar",
		},
		{
			name:      "bare confirmation word confirms pending create",
			utterance: "yes",
			state:     Context{HasPendingNote: true, HasPendingCreate: true},
			wantKind:  KindConfirmCreate,
		},
		{
			name:      "confirmation word without pending create falls through to rewrite",
			utterance: "yes",
			state:     Context{HasPendingNote: true},
			wantKind:  KindRewrite,
		},
		{
			name:      "digit picks from recent list",
			utterance: "2",
			state:     Context{HasPendingNote: true, AwaitingRecentChoice: true, RecentCount: 3},
			wantKind:  KindNumericChoice,
			wantIndex: 1,
		},
		{
			name:      "digit without recent list on offer is note text",
			utterance: "2",
			state:     Context{HasPendingNote: true},
			wantKind:  KindRewrite,
		},
		{
			name:      "show recent phrase",
			utterance: "show recent docs",
			state:     Context{HasPendingNote: true},
			wantKind:  KindShowRecent,
		},
		{
			name:      "save phrase mid utterance",
			utterance: "ok great, save it to Meeting Notes",
			state:     Context{HasPendingNote: true},
			wantKind:  KindSaveToNamed,
			wantTitle: "Meeting Notes",
		},
		{
			name:      "anything else is note text",
			utterance: "buy milk and eggs tomorrow",
			state:     Context{},
			wantKind:  KindRewrite,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.utterance, tc.state)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tc.utterance, err)
			}
			if got.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", got.Kind, tc.wantKind)
			}
			if got.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tc.wantTitle)
			}
			if got.Index != tc.wantIndex {
				t.Errorf("index = %d, want %d", got.Index, tc.wantIndex)
			}
		})
	}
}

func TestClassifyTitleExtraction(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		wantKind  Kind
		wantTitle string
	}{
		{
			name:      "casing preserved from raw utterance",
			utterance: "SAVE TO Groceries List",
			wantKind:  KindSaveToNamed,
			wantTitle: "Groceries List",
		},
		{
			name:      "called prefix stripped after save phrase",
			utterance: "save it called Recipes",
			wantKind:  KindSaveToNamed,
			wantTitle: "Recipes",
		},
		{
			name:      "bare save phrase yields empty title",
			utterance: "save to",
			wantKind:  KindSaveToNamed,
			wantTitle: "",
		},
		{
			name:      "bare save it yields empty title",
			utterance: "save it",
			wantKind:  KindSaveToNamed,
			wantTitle: "",
		},
		{
			name:      "shrinking-case rune before save phrase keeps offsets aligned",
			utterance: "İ save to Groceries",
			wantKind:  KindSaveToNamed,
			wantTitle: "Groceries",
		},
		{
			name:      "growing-case runes before bare save phrase",
			utterance: "ȺȺȺ save to",
			wantKind:  KindSaveToNamed,
			wantTitle: "",
		},
		{
			name:      "unicode title survives extraction untouched",
			utterance: "save it to Ⱥurora İstanbul",
			wantKind:  KindSaveToNamed,
			wantTitle: "Ⱥurora İstanbul",
		},
		{
			name:      "explicit create without title",
			utterance: "create a new document",
			wantKind:  KindExplicitCreate,
			wantTitle: "",
		},
		{
			name:      "explicit create named variant",
			utterance: "create new doc named Travel Plans",
			wantKind:  KindExplicitCreate,
			wantTitle: "Travel Plans",
		},
	}

	state := Context{HasPendingNote: true}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.utterance, state)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tc.utterance, err)
			}
			if got.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", got.Kind, tc.wantKind)
			}
			if got.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tc.wantTitle)
			}
		})
	}
}

func TestClassifySentinels(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		state     Context
		wantErr   error
	}{
		{
			name:      "save without pending note",
			utterance: "save to Groceries",
			state:     Context{},
			wantErr:   ErrNoPendingNote,
		},
		{
			name:      "explicit create without pending note",
			utterance: "create new doc called Bar",
			state:     Context{},
			wantErr:   ErrNoPendingNote,
		},
		{
			name:      "show recent without pending note",
			utterance: "show recent docs",
			state:     Context{},
			wantErr:   ErrNoPendingNote,
		},
		{
			name:      "choice past end of cached list",
			utterance: "4",
			state:     Context{HasPendingNote: true, AwaitingRecentChoice: true, RecentCount: 3},
			wantErr:   ErrInvalidChoice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.utterance, tc.state)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Classify(%q) error = %v, want %v", tc.utterance, err, tc.wantErr)
			}
		})
	}
}
