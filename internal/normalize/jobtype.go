package normalize

import (
	"strings"

	"go-jobharvest-automation/internal/models"
)

// Rules are ordered most specific first: "casual" must win over the
// generic "temporary", and "part" must be tested before "full" so that
// "part-time/full-time" hybrids resolve to part_time.
var jobTypeRules = []struct {
	keyword string
	jobType models.JobType
}{
	{"casual", models.TypeCasual},
	{"intern", models.TypeInternship},
	{"graduate program", models.TypeInternship},
	{"freelance", models.TypeFreelance},
	{"fixed term", models.TypeContract},
	{"contract", models.TypeContract},
	{"temp", models.TypeTemporary},
	{"part", models.TypePartTime},
	{"full", models.TypeFullTime},
	{"permanent", models.TypeFullTime},
}

// JobType maps raw employment-type text onto the closed enum. Unrecognized
// text defaults to full_time.
func JobType(raw string) models.JobType {
	text := strings.ToLower(CleanText(raw))
	for _, rule := range jobTypeRules {
		if strings.Contains(text, rule.keyword) {
			return rule.jobType
		}
	}
	return models.TypeFullTime
}
