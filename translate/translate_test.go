package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	defer SetLanguage(saved)

	SetLanguage(language.AmericanEnglish)
	assert.Equal(language.AmericanEnglish, Language())
	assert.Equal("line 12 'nop' oops", From("line %d '%v' %v", 12, "nop", "oops"))
	assert.Equal("1,234", From("%d", 1234))

	SetLanguage(language.German)
	assert.Equal("1.234", From("%d", 1234))
}
