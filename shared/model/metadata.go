package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// Stamp fills every audit column for a freshly inserted row.
func (m *Metadata) Stamp(now time.Time, username string) {
	m.CreatedAt = now
	m.ModifiedAt = now
	m.CreatedBy = username
	m.ModifiedBy = username
}
