package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobharvest-automation/internal/models"
)

func TestJobType(t *testing.T) {
	tests := []struct {
		raw  string
		want models.JobType
	}{
		//"casual" is more specific than the generic "part"
		{"Casual/Part-Time", models.TypeCasual},
		{"Permanent", models.TypeFullTime},
		{"Full Time", models.TypeFullTime},
		{"Part-time", models.TypePartTime},
		{"Contract/Temp", models.TypeContract},
		{"Temporary position", models.TypeTemporary},
		{"Internship", models.TypeInternship},
		{"Freelance", models.TypeFreelance},
		{"Fixed Term - 12 months", models.TypeContract},
		//unrecognized text falls back to full_time
		{"Shift work", models.TypeFullTime},
		{"", models.TypeFullTime},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, JobType(tt.raw))
		})
	}
}
