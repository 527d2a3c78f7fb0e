package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/kangocare/kango/pkg/civildate"
)

const (
	SexMale   = "male"
	SexFemale = "female"
	SexOther  = "other"
)

// Patient maps to the patient table.
type Patient struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Kana       string         `db:"kana" json:"kana"`
	BirthDate  civildate.Date `db:"birth_date" json:"birth_date"`
	Sex        string         `db:"sex" json:"sex"`
	PostalCode *string        `db:"postal_code" json:"postal_code,omitempty"`
	Address    *string        `db:"address" json:"address,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}
