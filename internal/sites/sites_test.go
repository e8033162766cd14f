package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"careerone", "gumtree", "jora"}, Names())

	_, err := Lookup("monster")
	assert.Error(t, err)
}

func TestProfilesAreWellFormed(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name)
			require.NoError(t, err)

			assert.NotEmpty(t, p.CardSelector)
			assert.NotNil(t, p.LinkShape)
			assert.NotEmpty(t, p.Card.Link, "every card needs a link cascade")
			assert.NotEmpty(t, p.Detail.Description, "every detail page needs a description cascade")
			assert.Contains(t, p.PageURL(3), "3")
			if p.Pagination == PaginateNextControl {
				assert.NotEmpty(t, p.NextSelector)
			}
		})
	}
}

func TestLinkShapes(t *testing.T) {
	jora, _ := Lookup("jora")
	assert.True(t, jora.LinkShape.MatchString("https://au.jora.com/job/boilermaker-88421"))
	assert.False(t, jora.LinkShape.MatchString("https://au.jora.com/about-us"))

	gumtree, _ := Lookup("gumtree")
	assert.True(t, gumtree.LinkShape.MatchString("https://www.gumtree.com.au/s-ad/sydney/forklift-driver/1234567890"))
	assert.False(t, gumtree.LinkShape.MatchString("https://www.gumtree.com.au/s-jobs/page-2/c9302"))
}
