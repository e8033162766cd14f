package normalize

import (
	"strings"
)

// LocationInfo is the canonical place value. Country defaults to Australia
// since every supported board is an Australian one.
type LocationInfo struct {
	City    string
	State   string
	Country string
}

var stateAbbreviations = map[string]string{
	"nsw": "New South Wales",
	"vic": "Victoria",
	"qld": "Queensland",
	"sa":  "South Australia",
	"wa":  "Western Australia",
	"tas": "Tasmania",
	"act": "Australian Capital Territory",
	"nt":  "Northern Territory",
}

var stateFullNames = map[string]string{
	"new south wales":              "New South Wales",
	"victoria":                     "Victoria",
	"queensland":                   "Queensland",
	"south australia":              "South Australia",
	"western australia":            "Western Australia",
	"tasmania":                     "Tasmania",
	"australian capital territory": "Australian Capital Territory",
	"northern territory":           "Northern Territory",
}

// capitalStates resolves a bare capital-city token to its state.
var capitalStates = map[string]string{
	"sydney":    "New South Wales",
	"melbourne": "Victoria",
	"brisbane":  "Queensland",
	"adelaide":  "South Australia",
	"perth":     "Western Australia",
	"hobart":    "Tasmania",
	"canberra":  "Australian Capital Territory",
	"darwin":    "Northern Territory",
}

// Location parses free-form location text: strips a trailing country token,
// expands state abbreviations, and splits "(city, state)" on the comma. A
// single remaining token is tested against the abbreviation and capital
// tables before being treated as a bare city.
func Location(raw string) LocationInfo {
	info := LocationInfo{Country: "Australia"}

	text := CleanText(raw)
	if text == "" {
		return info
	}

	//trailing country token
	for _, suffix := range []string{"australia", "au"} {
		lower := strings.ToLower(text)
		if lower == suffix {
			return info
		}
		for _, sep := range []string{", ", " "} {
			if strings.HasSuffix(lower, sep+suffix) {
				text = strings.TrimSpace(text[:len(text)-len(sep)-len(suffix)])
				text = strings.TrimSuffix(text, ",")
			}
		}
	}

	parts := strings.SplitN(text, ",", 2)
	if len(parts) == 2 {
		info.City = CleanText(parts[0])
		info.State = expandState(CleanText(parts[1]))
		return info
	}

	token := CleanText(parts[0])
	lower := strings.ToLower(token)
	if full, ok := stateAbbreviations[lower]; ok {
		info.State = full
		return info
	}
	if full, ok := stateFullNames[lower]; ok {
		info.State = full
		return info
	}

	//"Parramatta NSW" without the comma
	words := strings.Fields(token)
	if len(words) > 1 {
		if full, ok := stateAbbreviations[strings.ToLower(words[len(words)-1])]; ok {
			info.City = strings.Join(words[:len(words)-1], " ")
			info.State = full
			return info
		}
	}

	info.City = token
	if state, ok := capitalStates[lower]; ok {
		info.State = state
	}
	return info
}

func expandState(token string) string {
	lower := strings.ToLower(token)
	if full, ok := stateAbbreviations[lower]; ok {
		return full
	}
	if full, ok := stateFullNames[lower]; ok {
		return full
	}
	return token
}
