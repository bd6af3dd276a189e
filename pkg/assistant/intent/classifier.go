package intent

import (
	"regexp"
	"strings"
)

var numericChoiceRe = regexp.MustCompile(`^[1-5]$`)

// rule pairs a guard with an extractor. Classify walks the table top to
// bottom and returns the first rule whose match fires; the table order IS the
// priority order.
type rule struct {
	match func(lower string, state Context) bool
	build func(raw, lower string, state Context) (*Intent, error)
}

var rules = []rule{
	// 1. ExplicitCreate: command prefix, always wins. Needs a pending note.
	{
		match: func(lower string, _ Context) bool {
			return matchCreateTemplate(lower) != nil
		},
		build: func(raw, lower string, state Context) (*Intent, error) {
			if !state.HasPendingNote {
				return nil, ErrNoPendingNote
			}
			tmpl := matchCreateTemplate(lower)
			title := ""
			if tmpl.hasTitle {
				title = strings.TrimSpace(raw[len(tmpl.prefix):])
			}
			return &Intent{Kind: KindExplicitCreate, Title: title}, nil
		},
	},
	// 2. NumericChoice: a single digit while a recent list is on offer. The
	// regex bounds the digit to 1-5 but the cache can be shorter, so the
	// index is still checked against the actual list length.
	{
		match: func(lower string, state Context) bool {
			return state.AwaitingRecentChoice && numericChoiceRe.MatchString(lower)
		},
		build: func(raw, lower string, state Context) (*Intent, error) {
			index := int(lower[0]-'0') - 1
			if index >= state.RecentCount {
				return nil, ErrInvalidChoice
			}
			return &Intent{Kind: KindNumericChoice, Index: index}, nil
		},
	},
	// 3. ConfirmCreate: a bare confirmation word, only while a create prompt
	// is open.
	{
		match: func(lower string, state Context) bool {
			return state.HasPendingCreate && containsExact(confirmWords, lower)
		},
		build: func(_, _ string, _ Context) (*Intent, error) {
			return &Intent{Kind: KindConfirmCreate}, nil
		},
	},
	// 4. ShowRecent: exact phrase. Needs a pending note to offer saving into.
	{
		match: func(lower string, _ Context) bool {
			return containsExact(showRecentPhrases, lower)
		},
		build: func(_, _ string, state Context) (*Intent, error) {
			if !state.HasPendingNote {
				return nil, ErrNoPendingNote
			}
			return &Intent{Kind: KindShowRecent}, nil
		},
	},
	// 5. SaveToNamed: save phrase anywhere in the utterance.
	{
		match: func(lower string, _ Context) bool {
			_, _, ok := matchSavePattern(lower)
			return ok
		},
		build: func(raw, lower string, state Context) (*Intent, error) {
			if !state.HasPendingNote {
				return nil, ErrNoPendingNote
			}
			idx, pattern, _ := matchSavePattern(lower)
			title := extractSaveTarget(raw, idx, len(pattern))
			return &Intent{Kind: KindSaveToNamed, Title: title}, nil
		},
	},
	// 6. Rewrite: the default; the whole utterance is note text.
	{
		match: func(_ string, _ Context) bool {
			return true
		},
		build: func(raw, _ string, _ Context) (*Intent, error) {
			return &Intent{Kind: KindRewrite, Text: raw}, nil
		},
	},
}

// Classify resolves an utterance to exactly one intent, or to one of the two
// sentinel outcomes (ErrNoPendingNote, ErrInvalidChoice).
func Classify(utterance string, state Context) (*Intent, error) {
	raw := strings.TrimSpace(utterance)
	lower := asciiLower(raw)

	for _, r := range rules {
		if r.match(lower, state) {
			return r.build(raw, lower, state)
		}
	}
	// Unreachable: the final rule always matches.
	return &Intent{Kind: KindRewrite, Text: raw}, nil
}

func matchCreateTemplate(lower string) *createTemplate {
	for i := range createTemplates {
		if strings.HasPrefix(lower, createTemplates[i].prefix) {
			return &createTemplates[i]
		}
	}
	return nil
}

// matchSavePattern returns the byte offset and the pattern of the first save
// phrase found, scanning the pattern list in order.
func matchSavePattern(lower string) (int, string, bool) {
	for _, pattern := range savePatterns {
		if idx := strings.Index(lower, pattern); idx >= 0 {
			return idx, pattern, true
		}
	}
	return 0, "", false
}

// extractSaveTarget slices the title out of the raw utterance (preserving the
// user's casing) and strips a leading "called"/"named" token. An empty result
// is passed through unchanged; the lookup downstream simply will not match.
func extractSaveTarget(raw string, patternIdx, patternLen int) string {
	title := strings.TrimSpace(raw[patternIdx+patternLen:])
	lowerTitle := asciiLower(title)
	for _, prefix := range titlePrefixes {
		if strings.HasPrefix(lowerTitle, prefix) {
			return strings.TrimSpace(title[len(prefix):])
		}
	}
	return title
}

// asciiLower lowers A-Z only. Unicode case mapping can change byte lengths
// ("İ" shrinks, "Ⱥ" grows), which would invalidate the byte offsets the save
// and create rules slice out of the raw utterance. Every pattern in the
// tables is ASCII, so ASCII folding is enough for matching and keeps the
// lowered string the same length as the input.
func asciiLower(s string) string {
	upper := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			upper = i
			break
		}
	}
	if upper < 0 {
		return s
	}
	b := []byte(s)
	for i := upper; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func containsExact(set []string, s string) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
