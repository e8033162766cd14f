package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var skillKeywords = []string{"Welding", "Forklift", "MIG", "TIG", "First Aid", "Excel"}

func TestSkillsRequiredOnly(t *testing.T) {
	desc := "Essential: welding experience and a current forklift licence."

	got := Skills(desc, skillKeywords, nil)
	assert.Equal(t, []string{"Welding", "Forklift"}, got.Required)
	assert.Empty(t, got.Preferred)
}

func TestSkillsSplitOnPreferredMarker(t *testing.T) {
	desc := "You will need MIG welding experience. Desirable: TIG and First Aid certificate."

	got := Skills(desc, skillKeywords, nil)
	assert.Equal(t, []string{"Welding", "MIG"}, got.Required)
	assert.Equal(t, []string{"TIG", "First Aid"}, got.Preferred)
}

func TestSkillsNoMatchesStaysEmpty(t *testing.T) {
	//no signal means no skills; nothing is fabricated to fill the lists
	got := Skills("Friendly team environment with great culture.", skillKeywords, nil)
	assert.Empty(t, got.Required)
	assert.Empty(t, got.Preferred)
}

func TestSkillsTokenBoundaries(t *testing.T) {
	got := Skills("Must be able to excel under pressure using Excel spreadsheets.", []string{"Excel"}, nil)
	assert.Equal(t, []string{"Excel"}, got.Required)

	got = Skills("Experience with Excellerate CRM.", []string{"Excel"}, nil)
	assert.Empty(t, got.Required, "keyword must not fire inside a longer word")
}

func TestSkillsEmptyInputs(t *testing.T) {
	assert.Empty(t, Skills("", skillKeywords, nil).Required)
	assert.Empty(t, Skills("welding", nil, nil).Required)
}
