package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// Stamp fills the audit columns for a fresh row.
func (m *Metadata) Stamp(actor string, now time.Time) {
	m.CreatedAt = now
	m.ModifiedAt = now
	m.CreatedBy = actor
	m.ModifiedBy = actor
}

// Touch updates the modification columns only.
func (m *Metadata) Touch(actor string, now time.Time) {
	m.ModifiedAt = now
	m.ModifiedBy = actor
}
