package extract

// FieldStrategies is the per-site cascade table: for each logical field an
// ordered list of strategies, tried until one yields acceptable content.
type FieldStrategies struct {
	Title       []Strategy
	Company     []Strategy
	Location    []Strategy
	Salary      []Strategy
	JobType     []Strategy
	Description []Strategy
	PostedAgo   []Strategy
	Link        []Strategy
}

// RawFields holds the pre-normalization extraction output. Empty strings
// mean "no cascade strategy accepted"; defaults are applied later during
// normalization, never invented here.
type RawFields struct {
	Title           string
	Company         string
	Location        string
	Salary          string
	JobType         string
	Description     string
	DescriptionHTML string
	PostedAgo       string
	Href            string
}

// Fields runs the cascade for every logical field of a job card or detail
// page element.
func Fields(el Element, fs FieldStrategies) RawFields {
	short := Accept(1, 500)
	long := Accept(1, 50000)

	raw := RawFields{
		Title:       Extract(el, fs.Title, Accept(2, 500)),
		Company:     Extract(el, fs.Company, short),
		Location:    Extract(el, fs.Location, short),
		Salary:      Extract(el, fs.Salary, short),
		JobType:     Extract(el, fs.JobType, short),
		Description: Extract(el, fs.Description, long),
		PostedAgo:   Extract(el, fs.PostedAgo, short),
		Href:        Extract(el, fs.Link, Accept(1, 2000)),
	}

	//keep the description's markup as well, for storage and skills scanning
	for _, st := range fs.Description {
		if st.Kind != KindSelector {
			continue
		}
		if html, err := el.HTML(st.Selector); err == nil && html != "" {
			raw.DescriptionHTML = html
			break
		}
	}

	return raw
}

// Merge overlays detail-page values on top of listing-card values. Detail
// values win only when non-empty; listing data is the floor.
func Merge(base, detail RawFields) RawFields {
	merged := base
	if detail.Title != "" {
		merged.Title = detail.Title
	}
	if detail.Company != "" {
		merged.Company = detail.Company
	}
	if detail.Location != "" {
		merged.Location = detail.Location
	}
	if detail.Salary != "" {
		merged.Salary = detail.Salary
	}
	if detail.JobType != "" {
		merged.JobType = detail.JobType
	}
	if detail.Description != "" {
		merged.Description = detail.Description
	}
	if detail.DescriptionHTML != "" {
		merged.DescriptionHTML = detail.DescriptionHTML
	}
	if detail.PostedAgo != "" {
		merged.PostedAgo = detail.PostedAgo
	}
	if detail.Href != "" {
		merged.Href = detail.Href
	}
	return merged
}
