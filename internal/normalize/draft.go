package normalize

import (
	"regexp"
	"time"

	"go-jobharvest-automation/internal/extract"
	"go-jobharvest-automation/internal/models"
)

// DraftOptions carries the run-scoped inputs normalization needs: the
// current instant for relative dates, provenance identifiers, and the
// site's keyword tables (injected as data, not code).
type DraftOptions struct {
	Now              time.Time
	Source           string
	RunID            string
	SkillKeywords    []string
	PreferredMarkers []string
}

var externalIDRegex = regexp.MustCompile(`/(\d+)(?:/|$|\?)`)

// Draft converts raw extracted fields into a canonical JobDraft, applying
// every fallback default in one place. Raw text that failed to parse is
// preserved in AdditionalInfo for audit.
func Draft(raw extract.RawFields, o DraftOptions) *models.JobDraft {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}

	info := map[string]any{
		"source":     o.Source,
		"run_id":     o.RunID,
		"scraped_at": o.Now.UTC().Format(time.RFC3339),
	}

	title := Truncate(CleanText(raw.Title), models.MaxTitleLength)
	if title == "" {
		title = TitleFromURL(raw.Href)
		info["title_derived_from_url"] = true
	}

	descText := CleanText(raw.Description)
	if descText == "" && raw.DescriptionHTML != "" {
		descText = HTMLToText(raw.DescriptionHTML)
	}

	salary := Salary(raw.Salary)
	if raw.Salary != "" && salary.Min == nil {
		info["salary_unparsed"] = raw.Salary
	}

	postedAt, ok := PostedDate(raw.PostedAgo, o.Now)
	if raw.PostedAgo != "" && !ok {
		info["posted_ago_unparsed"] = raw.PostedAgo
	}

	loc := Location(raw.Location)
	skills := Skills(descText, o.SkillKeywords, o.PreferredMarkers)

	externalID := ""
	if m := externalIDRegex.FindStringSubmatch(raw.Href); m != nil {
		externalID = m[1]
	}

	return &models.JobDraft{
		Title:           title,
		CompanyName:     CleanText(raw.Company),
		LocationText:    CleanText(raw.Location),
		City:            loc.City,
		State:           loc.State,
		Country:         loc.Country,
		DescriptionText: descText,
		DescriptionHTML: raw.DescriptionHTML,
		SalaryRaw:       CleanText(raw.Salary),
		SalaryMin:       salary.Min,
		SalaryMax:       salary.Max,
		SalaryCurrency:  salary.Currency,
		SalaryPeriod:    salary.Period,
		JobTypeRaw:      CleanText(raw.JobType),
		JobType:         JobType(raw.JobType),
		PostedAgo:       CleanText(raw.PostedAgo),
		PostedAt:        postedAt,
		ExternalURL:     raw.Href,
		ExternalID:      externalID,
		Skills:          skills.Required,
		PreferredSkills: skills.Preferred,
		AdditionalInfo:  info,
	}
}
