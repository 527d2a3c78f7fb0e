package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/kangocare/kango/internal/domain/admission"
	"github.com/kangocare/kango/internal/rubric"
	"github.com/kangocare/kango/pkg/civildate"
)

// DailyAssessment maps to the daily_assessment table. One row per
// (admission, calendar date). Scores and Severe are derived from Items on
// every save; a submitted copy is never trusted.
type DailyAssessment struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	AdmissionID uuid.UUID         `db:"admission_id" json:"admission_id"`
	Date        civildate.Date    `db:"date" json:"date"`
	RubricID    string            `db:"rubric_id" json:"rubric_id"`
	Items       rubric.ItemValues `db:"items" json:"items"`
	Scores      rubric.Scores     `db:"-" json:"scores"`
	Severe      bool              `db:"severe" json:"severe"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// DaySummary is one row of the monthly review matrix: the resolved location
// joined with that day's stored scores.
type DaySummary struct {
	Date      civildate.Date     `json:"date"`
	Location  admission.Location `json:"location"`
	Editable  bool               `json:"editable"`
	HasRecord bool               `json:"has_record"`
	Scores    rubric.Scores      `json:"scores"`
	Severe    bool               `json:"severe"`
}
