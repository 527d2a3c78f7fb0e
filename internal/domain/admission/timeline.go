package admission

import (
	"errors"
	"sort"

	"github.com/kangocare/kango/pkg/civildate"
)

// Status labels produced by ResolveLocation for one calendar day.
const (
	StatusInHospital   = "in-hospital"    // ordinary hospitalized day
	StatusAdmitted     = "admitted"       // the admission day itself
	StatusWardTransfer = "ward-transfer"  // a ward transfer happened that day
	StatusRoomTransfer = "room-transfer"  // a room transfer happened that day
	StatusOvernight    = "overnight-leave" // on leave of absence
	StatusDischarged   = "discharged"     // the discharge day; overrides everything
)

// ErrAmbiguousStay is returned when more than one admission of the same
// patient contains the query date. Overlapping stays are rejected at save
// time, so hitting this means the stored data is inconsistent; the resolver
// refuses to pick one silently.
var ErrAmbiguousStay = errors.New("multiple admissions contain the date")

// Location is the resolved ward, room and status for one day. Resolved is
// false when no admission covers the date; the patient is simply not present
// and the other fields are empty.
type Location struct {
	Ward     string `json:"ward,omitempty"`
	Room     string `json:"room,omitempty"`
	Status   string `json:"status,omitempty"`
	Resolved bool   `json:"resolved"`
}

// Editable reports whether a daily assessment may be entered for this day:
// the patient must be in hospital and not on overnight leave. The discharge
// day itself remains editable.
func (l Location) Editable() bool {
	return l.Resolved && l.Status != StatusOvernight
}

// ResolveLocation determines which ward, room and status apply on the given
// date. The admissions slice may be in any order.
//
// Movements are replayed in ascending date order; movements sharing a date
// keep their declaration order (stable sort), so out-of-order input still
// resolves identically. An overnight movement without an end date affects
// only its own start date. The discharge-day status takes priority over any
// movement recorded on the same date.
func ResolveLocation(admissions []*Admission, date civildate.Date) (Location, error) {
	var stay *Admission
	for _, a := range admissions {
		if !a.Contains(date) {
			continue
		}
		if stay != nil {
			return Location{}, ErrAmbiguousStay
		}
		stay = a
	}
	if stay == nil {
		return Location{}, nil
	}

	loc := Location{
		Ward:     stay.InitialWard,
		Room:     stay.InitialRoom,
		Status:   StatusInHospital,
		Resolved: true,
	}
	if date.Equal(stay.AdmissionDate) {
		loc.Status = StatusAdmitted
	}

	movements := make([]Movement, len(stay.Movements))
	copy(movements, stay.Movements)
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date)
	})

	for _, m := range movements {
		if m.Date.After(date) {
			continue
		}
		switch m.Type {
		case MovementWardTransfer:
			loc.Ward = m.Ward
			if m.Room != "" {
				loc.Room = m.Room
			}
			if m.Date.Equal(date) {
				loc.Status = StatusWardTransfer
			}
		case MovementRoomTransfer:
			loc.Room = m.Room
			if m.Date.Equal(date) {
				loc.Status = StatusRoomTransfer
			}
		case MovementOvernight:
			onLeave := m.Date.Equal(date) ||
				(m.EndDate != nil && date.After(m.Date) && !date.After(*m.EndDate))
			if onLeave {
				loc.Status = StatusOvernight
			}
		}
	}

	if stay.DischargeDate != nil && date.Equal(*stay.DischargeDate) {
		loc.Status = StatusDischarged
	}
	return loc, nil
}
