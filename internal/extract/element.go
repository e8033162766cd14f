package extract

import (
	"github.com/playwright-community/playwright-go"
)

// Element is the surface the cascade engine needs from a DOM node. The
// production implementation wraps a Playwright locator; tests use a fake.
type Element interface {
	//Text returns the text content of the first child matching selector
	Text(selector string) (string, error)
	//Attribute returns an attribute of the first child matching selector
	Attribute(selector, name string) (string, error)
	//FlatText returns the element's own flattened inner text
	FlatText() (string, error)
	//HTML returns the inner HTML of the first child matching selector
	HTML(selector string) (string, error)
}

const childTimeoutMs = 1500

// LocatorElement adapts a playwright.Locator (a job card, or a detail
// page's body) to the Element interface. Child lookups carry a short
// timeout so a missing selector fails fast instead of stalling the run.
// An empty selector addresses the element itself (some boards make the
// whole card an anchor).
type LocatorElement struct {
	loc playwright.Locator
}

func NewLocatorElement(loc playwright.Locator) *LocatorElement {
	return &LocatorElement{loc: loc}
}

func (e *LocatorElement) target(selector string) playwright.Locator {
	if selector == "" {
		return e.loc
	}
	return e.loc.Locator(selector).First()
}

func (e *LocatorElement) Text(selector string) (string, error) {
	return e.target(selector).TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(childTimeoutMs),
	})
}

func (e *LocatorElement) Attribute(selector, name string) (string, error) {
	return e.target(selector).GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(childTimeoutMs),
	})
}

func (e *LocatorElement) FlatText() (string, error) {
	return e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(childTimeoutMs),
	})
}

func (e *LocatorElement) HTML(selector string) (string, error) {
	return e.target(selector).InnerHTML(playwright.LocatorInnerHTMLOptions{
		Timeout: playwright.Float(childTimeoutMs),
	})
}
