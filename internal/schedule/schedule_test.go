package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinickit/agenda-api/internal/model"
)

// Fixed reference instant shared by the engine tests.
var testNow = time.Date(2024, 2, 25, 12, 0, 0, 0, time.UTC)

func makeAppointment(n int, dayOffset int, startTime string, status model.AppointmentStatus) *model.Appointment {
	date := testNow.AddDate(0, 0, dayOffset)
	return &model.Appointment{
		ID:              uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("test-appointment-%d", n))),
		PatientID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("test-patient-%d", n))),
		PatientName:     fmt.Sprintf("Patient %d", n),
		Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:       startTime,
		DurationMinutes: 30,
		Status:          status,
		CreatedAt:       testNow.AddDate(0, -1, 0),
	}
}
