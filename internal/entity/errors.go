package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrUserBlocked      = errors.New("user is blocked")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrSelfTransfer     = errors.New("cannot transfer admin rights to yourself")
	ErrAlreadyAssigned  = errors.New("counsellee is already assigned")
	ErrNotCounsellor    = errors.New("user is not a counsellor")
	ErrRoleConflict     = errors.New("role changed concurrently")
)

const (
	ErrMsgInternal         = "Internal server error"
	ErrMsgBadRequest       = "Bad request"
	ErrMsgUnauthorized     = "Authentication required"
	ErrMsgForbidden        = "Access denied"
	ErrMsgUserNotFound     = "User not found"
	ErrMsgNotFound         = "Not found"
	ErrMsgAlreadyAssigned  = "Counsellee is already assigned to this counsellor"
	ErrMsgNotCounsellor    = "User is not a counsellor"
	ErrMsgSelfTransfer     = "Admin rights cannot be transferred to yourself"
	ErrMsgUserBlocked      = "User is blocked"
	ErrMsgMissingTokenText = "Missing bearer token"
	ErrMsgRoleConflict     = "Role was changed by another request, reload and try again"
)
