package extract

import (
	"regexp"
	"strings"
	"sync"
)

// Kind selects how a Strategy pulls text out of an element.
type Kind string

const (
	//KindSelector reads the text content of a child selector
	KindSelector Kind = "selector"
	//KindAttribute reads an attribute off a child selector
	KindAttribute Kind = "attribute"
	//KindPattern runs a regexp over the element's flattened text
	KindPattern Kind = "pattern"
)

// Strategy is one extraction attempt, expressed as data rather than code.
// Site profiles are tables of these; the cascade engine is shared.
type Strategy struct {
	Kind      Kind
	Selector  string
	Attribute string
	Pattern   string
}

// Predicate decides whether an extracted value is acceptable.
type Predicate func(string) bool

// Accept builds the common acceptance predicate: non-empty after trim and
// length within [minLen, maxLen].
func Accept(minLen, maxLen int) Predicate {
	return func(s string) bool {
		s = strings.TrimSpace(s)
		return len(s) >= minLen && len(s) <= maxLen
	}
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func compilePattern(pattern string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patternCache[pattern]; ok {
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		//bad pattern in a profile table is a no-match, not a crash
		patternCache[pattern] = nil
		return nil
	}
	patternCache[pattern] = re
	return re
}

// Extract runs the cascade: strategies are tried in order and the FIRST
// value passing accept wins. It never picks the "best" of all candidates;
// first-acceptable keeps behavior deterministic and debuggable. When no
// strategy succeeds the result is the empty string and the caller applies
// its fallback during normalization.
func Extract(el Element, strategies []Strategy, accept Predicate) string {
	for _, st := range strategies {
		value, err := apply(el, st)
		if err != nil {
			continue
		}
		value = strings.TrimSpace(value)
		if accept(value) {
			return value
		}
	}
	return ""
}

func apply(el Element, st Strategy) (string, error) {
	switch st.Kind {
	case KindSelector:
		return el.Text(st.Selector)
	case KindAttribute:
		return el.Attribute(st.Selector, st.Attribute)
	case KindPattern:
		re := compilePattern(st.Pattern)
		if re == nil {
			return "", nil
		}
		flat, err := el.FlatText()
		if err != nil {
			return "", err
		}
		match := re.FindStringSubmatch(flat)
		if match == nil {
			return "", nil
		}
		//prefer the first capture group when the pattern has one
		if len(match) > 1 {
			return match[1], nil
		}
		return match[0], nil
	}
	return "", nil
}
