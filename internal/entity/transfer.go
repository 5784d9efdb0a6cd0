package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type AdminRightsTransfer struct {
	ID            uuid.UUID `json:"id"`
	FromUserID    uuid.UUID `json:"from_user_id"`
	ToUserID      uuid.UUID `json:"to_user_id"`
	Role          Role      `json:"role"`
	FromNewRole   Role      `json:"from_new_role"`
	ToPrevRole    Role      `json:"to_prev_role"`
	TransferredAt time.Time `json:"transferred_at"`
}

// RoleChange is published whenever a user's stored role is rewritten.
type RoleChange struct {
	UserID    uuid.UUID `json:"user_id"`
	OldRole   Role      `json:"old_role"`
	NewRole   Role      `json:"new_role"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
