package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateActTitle_Boundary(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateActTitle("abcd"), "length 4 must be rejected")
	assert.NoError(t, ValidateActTitle("abcde"), "length 5 must be accepted")
	assert.Error(t, ValidateActTitle("    "), "whitespace only")
	assert.Error(t, ValidateActTitle(strings.Repeat("x", MaxActTitleLen+1)))
	assert.NoError(t, ValidateActTitle("Приказ №5"), "rune counting, not bytes")
}

func TestValidateStaticID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateStaticID("AB-12"))
	assert.NoError(t, ValidateStaticID("AB 12"))
	assert.Error(t, ValidateStaticID(""))
	assert.Error(t, ValidateStaticID("x"))
	assert.Error(t, ValidateStaticID("статик"), "non-latin rejected at input level")
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("passw0rd"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("lettersonly"))
	assert.Error(t, ValidatePassword("12345678"))
}

func TestValidateReason(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateReason("too short"))
	assert.NoError(t, ValidateReason("a sufficiently long justification"))
}
