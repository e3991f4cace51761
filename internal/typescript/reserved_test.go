// SPDX-License-Identifier: Apache-2.0

package typescript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeReserved(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"safe string", "foo", "foo"},
		{"unsafe javascript string", "null", "null_"},
		{"unsafe typescript string", "interface", "interface_"},
		{"contextual keyword", "constructor", "constructor_"},
		{"case sensitive", "Interface", "Interface"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeReserved(tt.token))
		})
	}
}

func TestSafeReserved_IdempotentOnSafeInput(t *testing.T) {
	for _, token := range []string{"foo", "tPSCode", "memo"} {
		once := SafeReserved(token)
		assert.Equal(t, once, SafeReserved(once))
	}
}

func TestSafeReserved_OutputNeverReserved(t *testing.T) {
	for keyword := range languageKeywords {
		safe := SafeReserved(keyword)

		assert.NotEqual(t, keyword, safe)
		assert.True(t, strings.HasSuffix(safe, "_"))
		_, stillReserved := languageKeywords[safe]
		assert.False(t, stillReserved, "sanitized %q is itself reserved", keyword)
	}
}
