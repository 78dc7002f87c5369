package schedule

import (
	"unicode"
	"unicode/utf8"

	"github.com/clinickit/agenda-api/internal/model"
)

// Severity is the visual priority tier attached to a status badge.
type Severity string

const (
	SeveritySuccess   Severity = "success"
	SeverityDanger    Severity = "danger"
	SeverityWarning   Severity = "warning"
	SeverityInfo      Severity = "info"
	SeveritySecondary Severity = "secondary"
)

// Badge is the display projection of a status within a temporal bucket.
type Badge struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Evaluate derives the display badge for a status in a bucket. The rules
// apply in priority order, first match wins. The derived "Missed" label is
// read-side only; the stored status stays "scheduled".
func Evaluate(status model.AppointmentStatus, bucket Bucket) Badge {
	switch {
	case status == model.AppointmentStatusCompleted:
		return Badge{Label: "Completed", Severity: SeveritySuccess}
	case status == model.AppointmentStatusCancelled:
		return Badge{Label: "Cancelled", Severity: SeverityDanger}
	case status == model.AppointmentStatusScheduled && bucket == BucketPast:
		return Badge{Label: "Missed", Severity: SeverityWarning}
	case bucket == BucketToday:
		return Badge{Label: capitalize(string(status)), Severity: SeverityInfo}
	default:
		return Badge{Label: capitalize(string(status)), Severity: SeveritySecondary}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
