package controller

import (
	"testing"

	"gorlea-notes-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestParseListLimit(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		want      int
		wantError bool
	}{
		{name: "absent means service default", raw: "", want: 0},
		{name: "positive integer passes through", raw: "25", want: 25},
		{name: "non numeric is rejected", raw: "abc", wantError: true},
		{name: "negative is rejected", raw: "-1", wantError: true},
		{name: "zero is rejected", raw: "0", wantError: true},
		{name: "float is rejected", raw: "2.5", wantError: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseListLimit(tc.raw)
			if tc.wantError {
				assert.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
