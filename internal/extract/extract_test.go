package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeElement backs the cascade tests without a browser.
type fakeElement struct {
	texts map[string]string
	attrs map[string]string
	flat  string
	html  map[string]string
}

func (f *fakeElement) Text(selector string) (string, error) {
	if v, ok := f.texts[selector]; ok {
		return v, nil
	}
	return "", errors.New("no such element")
}

func (f *fakeElement) Attribute(selector, name string) (string, error) {
	if v, ok := f.attrs[selector+"@"+name]; ok {
		return v, nil
	}
	return "", errors.New("no such attribute")
}

func (f *fakeElement) FlatText() (string, error) {
	return f.flat, nil
}

func (f *fakeElement) HTML(selector string) (string, error) {
	if v, ok := f.html[selector]; ok {
		return v, nil
	}
	return "", errors.New("no such element")
}

func TestExtractFirstAcceptableWins(t *testing.T) {
	//both the primary and the fallback selector would pass; the primary
	//must win regardless
	el := &fakeElement{texts: map[string]string{
		"h3.job-title": "Primary Title",
		"h3":           "Fallback Title",
	}}
	strategies := []Strategy{
		{Kind: KindSelector, Selector: "h3.job-title"},
		{Kind: KindSelector, Selector: "h3"},
	}

	got := Extract(el, strategies, Accept(1, 100))
	assert.Equal(t, "Primary Title", got)
}

func TestExtractFallsThroughOnMiss(t *testing.T) {
	el := &fakeElement{texts: map[string]string{
		"span.company": "Acme Pty Ltd",
	}}
	strategies := []Strategy{
		{Kind: KindSelector, Selector: "div.employer"},
		{Kind: KindSelector, Selector: "span.company"},
	}

	got := Extract(el, strategies, Accept(1, 100))
	assert.Equal(t, "Acme Pty Ltd", got)
}

func TestExtractRejectsByPredicate(t *testing.T) {
	el := &fakeElement{texts: map[string]string{
		"h3": "   ",
		"h2": "Real Title",
	}}
	strategies := []Strategy{
		{Kind: KindSelector, Selector: "h3"},
		{Kind: KindSelector, Selector: "h2"},
	}

	got := Extract(el, strategies, Accept(2, 100))
	assert.Equal(t, "Real Title", got)
}

func TestExtractAttributeKind(t *testing.T) {
	el := &fakeElement{attrs: map[string]string{
		"a.job-link@href": "/job/12345/",
	}}
	strategies := []Strategy{
		{Kind: KindAttribute, Selector: "a.job-link", Attribute: "href"},
	}

	got := Extract(el, strategies, Accept(1, 100))
	assert.Equal(t, "/job/12345/", got)
}

func TestExtractPatternKind(t *testing.T) {
	el := &fakeElement{flat: "Acme Pty Ltd · Posted 3 days ago · Sydney"}
	strategies := []Strategy{
		{Kind: KindPattern, Pattern: `Posted\s+(.+?)\s+·`},
	}

	got := Extract(el, strategies, Accept(1, 100))
	assert.Equal(t, "3 days ago", got)
}

func TestExtractNothingAccepted(t *testing.T) {
	el := &fakeElement{}
	strategies := []Strategy{
		{Kind: KindSelector, Selector: "h1"},
		{Kind: KindPattern, Pattern: `\$\d+`},
	}

	got := Extract(el, strategies, Accept(1, 100))
	assert.Equal(t, "", got, "no strategy succeeded: field stays explicitly empty")
}

func TestMergeDetailOverridesOnlyWhenNonEmpty(t *testing.T) {
	base := RawFields{
		Title:    "Listing Title",
		Company:  "Listing Co",
		Salary:   "$80,000",
		Location: "Sydney, NSW",
	}
	detail := RawFields{
		Title:       "Detail Title",
		Description: "Full description text",
	}

	merged := Merge(base, detail)
	assert.Equal(t, "Detail Title", merged.Title)
	assert.Equal(t, "Listing Co", merged.Company, "listing value is the floor")
	assert.Equal(t, "$80,000", merged.Salary)
	assert.Equal(t, "Full description text", merged.Description)
}
