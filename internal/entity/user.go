package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID         uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccessProfile is what a screen needs to decide which controls to show.
type AccessProfile struct {
	UserID uuid.UUID `json:"user_id"`
	RoleInfo
	Permissions []Permission `json:"permissions"`
}

func NewAccessProfile(u User) AccessProfile {
	return AccessProfile{
		UserID:      u.ID,
		RoleInfo:    RoleInfoOf(u.Role),
		Permissions: PermissionsByRole(u.Role),
	}
}

// UserJwtInfo mirrors the user block the auth service signs into access tokens.
type UserJwtInfo struct {
	ID        uuid.UUID   `json:"id"`
	Role      UserJwtRole `json:"role"`
	IsBlocked bool        `json:"isBlocked"`
}

type UserJwtRole struct {
	ID   uuid.UUID `json:"role_id"`
	Name string    `json:"role_name"`
}

type UserJwtClaims struct {
	User UserJwtInfo
	jwt.RegisteredClaims
}
