package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"go-jobharvest-automation/internal/models"
)

// SalaryInfo is the canonical salary value. Min/Max are nil when no
// currency-marked numeric token was found.
type SalaryInfo struct {
	Min      *float64
	Max      *float64
	Currency string
	Period   models.SalaryPeriod
}

var (
	//range first: "$65 - $75", "$80k-$90k", "$70 to $85"
	salaryRangeRegex  = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?\s*k?)\s*(?:-|–|to)\s*\$?\s*([\d,]+(?:\.\d+)?\s*k?)`)
	salarySingleRegex = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?\s*k?)`)
	kSuffixRegex      = regexp.MustCompile(`(?i)k$`)
)

// Phrases that carry a currency symbol without carrying an actual figure.
// Their presence disqualifies the whole text from numeric matching.
var salaryDisqualifiers = []string{
	"salary sacrifice",
	"salary packaging",
	"competitive salary",
	"negotiable",
}

// Salary parses free-form salary text into a canonical range + currency +
// period. A range (two dash-separated numbers) is detected before a single
// value; a single value sets Min == Max. "75k" style suffixes expand to
// 75000. Default currency is AUD, default period yearly.
func Salary(raw string) SalaryInfo {
	info := SalaryInfo{
		Currency: detectCurrency(raw),
		Period:   detectPeriod(raw),
	}

	text := strings.ToLower(CleanText(raw))
	if text == "" {
		return info
	}
	for _, phrase := range salaryDisqualifiers {
		if strings.Contains(text, phrase) {
			return info
		}
	}

	if m := salaryRangeRegex.FindStringSubmatch(text); m != nil {
		lo, okLo := parseAmount(m[1])
		hi, okHi := parseAmount(m[2])
		if okLo && okHi {
			if lo > hi {
				lo, hi = hi, lo
			}
			info.Min, info.Max = &lo, &hi
			return info
		}
	}

	if m := salarySingleRegex.FindStringSubmatch(text); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			v2 := v
			info.Min, info.Max = &v, &v2
			return info
		}
	}

	return info
}

func parseAmount(token string) (float64, bool) {
	token = strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	token = strings.ReplaceAll(token, " ", "")
	multiplier := 1.0
	if kSuffixRegex.MatchString(token) {
		token = token[:len(token)-1]
		multiplier = 1000
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * multiplier, true
}

func detectCurrency(raw string) string {
	text := strings.ToLower(raw)
	switch {
	case strings.Contains(text, "usd") || strings.Contains(text, "us$"):
		return "USD"
	case strings.Contains(text, "nzd") || strings.Contains(text, "nz$"):
		return "NZD"
	case strings.Contains(text, "gbp") || strings.Contains(text, "£"):
		return "GBP"
	default:
		return "AUD"
	}
}

func detectPeriod(raw string) models.SalaryPeriod {
	text := strings.ToLower(raw)
	switch {
	case strings.Contains(text, "hour") || strings.Contains(text, "p.h") || strings.Contains(text, "/hr"):
		return models.PeriodHourly
	case strings.Contains(text, "day") || strings.Contains(text, "daily"):
		return models.PeriodDaily
	case strings.Contains(text, "week"):
		return models.PeriodWeekly
	case strings.Contains(text, "month"):
		return models.PeriodMonthly
	default:
		//covers "year", "annum", "p.a." and unmarked figures
		return models.PeriodYearly
	}
}
