package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type CounselleeAssignment struct {
	CounsellorID uuid.UUID `json:"counsellor_id"`
	CounselleeID uuid.UUID `json:"counsellee_id"`
	AssignedBy   uuid.UUID `json:"assigned_by"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// IDStrings converts ids into the form CanViewUserData compares against.
func IDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
