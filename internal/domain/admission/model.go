package admission

import (
	"time"

	"github.com/google/uuid"

	"github.com/kangocare/kango/pkg/civildate"
)

// MovementType distinguishes the dated events inside one stay.
type MovementType string

const (
	MovementWardTransfer MovementType = "ward-transfer"
	MovementRoomTransfer MovementType = "room-transfer"
	MovementOvernight    MovementType = "overnight"
)

// Movement is a point-in-time location or status change within an admission.
// Ward transfers change the ward (and optionally the room), room transfers
// change only the room, overnight movements mark a leave-of-absence interval
// [Date, EndDate]. Movements are owned by their admission and stored embedded.
type Movement struct {
	Type    MovementType    `json:"type"`
	Date    civildate.Date  `json:"date"`
	EndDate *civildate.Date `json:"end_date,omitempty"`
	Ward    string          `json:"ward,omitempty"`
	Room    string          `json:"room,omitempty"`
}

// Admission maps to the admission table. One row is one continuous hospital
// stay; a nil DischargeDate means the stay is ongoing. Ward and room fields
// hold the codes from the ward master.
type Admission struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	PatientID     uuid.UUID       `db:"patient_id" json:"patient_id"`
	AdmissionDate civildate.Date  `db:"admission_date" json:"admission_date"`
	DischargeDate *civildate.Date `db:"discharge_date" json:"discharge_date,omitempty"`
	InitialWard   string          `db:"initial_ward" json:"initial_ward"`
	InitialRoom   string          `db:"initial_room" json:"initial_room"`
	Movements     []Movement      `db:"movements" json:"movements"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Contains reports whether the stay covers the given date, both ends
// inclusive. A stay without a discharge date is open-ended.
func (a *Admission) Contains(d civildate.Date) bool {
	if d.Before(a.AdmissionDate) {
		return false
	}
	return a.DischargeDate == nil || !d.After(*a.DischargeDate)
}

// Overlaps reports whether two stays share at least one calendar day.
func (a *Admission) Overlaps(b *Admission) bool {
	if b.DischargeDate != nil && a.AdmissionDate.After(*b.DischargeDate) {
		return false
	}
	if a.DischargeDate != nil && b.AdmissionDate.After(*a.DischargeDate) {
		return false
	}
	return true
}
