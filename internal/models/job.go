package models

import (
	"time"
)

// MaxTitleLength bounds the stored title; anything longer is truncated.
const MaxTitleLength = 500

type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

type JobType string

const (
	TypeFullTime   JobType = "full_time"
	TypePartTime   JobType = "part_time"
	TypeCasual     JobType = "casual"
	TypeContract   JobType = "contract"
	TypeTemporary  JobType = "temporary"
	TypeInternship JobType = "internship"
	TypeFreelance  JobType = "freelance"
)

// JobDraft is the transient record produced by extraction + normalization.
// It is created once per discovered link, consumed by persistence, and
// discarded; it carries no identity of its own.
type JobDraft struct {
	Title           string         `json:"title"`
	CompanyName     string         `json:"company_name"`
	LocationText    string         `json:"location_text"`
	City            string         `json:"city"`
	State           string         `json:"state"`
	Country         string         `json:"country"`
	DescriptionText string         `json:"description_text"`
	DescriptionHTML string         `json:"description_html"`
	SalaryRaw       string         `json:"salary_raw"`
	SalaryMin       *float64       `json:"salary_min,omitempty"`
	SalaryMax       *float64       `json:"salary_max,omitempty"`
	SalaryCurrency  string         `json:"salary_currency"`
	SalaryPeriod    SalaryPeriod   `json:"salary_period"`
	JobTypeRaw      string         `json:"job_type_raw"`
	JobType         JobType        `json:"job_type"`
	PostedAgo       string         `json:"posted_ago"`
	PostedAt        time.Time      `json:"posted_at"`
	ExternalURL     string         `json:"external_url"`
	ExternalID      string         `json:"external_id,omitempty"`
	Skills          []string       `json:"skills"`
	PreferredSkills []string       `json:"preferred_skills"`
	AdditionalInfo  map[string]any `json:"additional_info,omitempty"`
}

// Company is a reference entity resolved by the persistence layer.
// Looked up by normalized name, created on first sight, never mutated
// by extraction.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID      string `json:"id"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// JobPosting is the persisted record: a JobDraft with Company/Location
// resolved to references. external_url is the identity key when non-empty;
// otherwise (title, company) acts as the key.
type JobPosting struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	LocationID string    `json:"location_id"`
	JobDraft
	CreatedAt time.Time `json:"created_at"`
}
