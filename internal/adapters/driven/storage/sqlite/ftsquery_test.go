package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeMatchQuery_QuotesTokens(t *testing.T) {
	assert.Equal(t, `"modal"`, SafeMatchQuery("modal"))
	assert.Equal(t, `"modal" OR "dialog"`, SafeMatchQuery("modal dialog"))
}

func TestSafeMatchQuery_StripsOperators(t *testing.T) {
	assert.Equal(t, `"modal" OR "dialog"`, SafeMatchQuery(`"modal" (dialog:^*)`))
}

func TestSafeMatchQuery_Empty(t *testing.T) {
	assert.Empty(t, SafeMatchQuery(""))
	assert.Empty(t, SafeMatchQuery(`"()"`))
}
