package dto

import (
	"time"

	"hotelpos/shared/constant"
	"hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

// Metadata is the audit trail shown on every resource. The modified pair is left out
// until the row has been changed after its creation.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(src model.Metadata) {
	m.CreatedAt = formatAudit(src.CreatedAt)
	m.CreatedBy = src.CreatedBy

	if src.ModifiedAt.After(src.CreatedAt) {
		m.ModifiedAt = formatAudit(src.ModifiedAt)
		m.ModifiedBy = src.ModifiedBy
	}
}

func formatAudit(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
