package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/access/internal/entity"
	"github.com/samandr77/microservices/access/pkg/logger"
	"github.com/samandr77/microservices/access/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	UserByID(ctx context.Context, userID uuid.UUID) (entity.User, error)
	CreateUser(ctx context.Context, u entity.User) (bool, error)
	CounselleeIDs(ctx context.Context, counsellorID uuid.UUID) ([]uuid.UUID, error)
	Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]entity.User, error)
	AssignCounsellee(ctx context.Context, a entity.CounselleeAssignment) error
	UnassignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error
	TransferAdminRights(ctx context.Context, t entity.AdminRightsTransfer) ([]uuid.UUID, error)
	AdminRightsTransfers(ctx context.Context, userID uuid.UUID) ([]entity.AdminRightsTransfer, error)
}

type Cache interface {
	Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]uuid.UUID, bool, error)
	SetCounsellees(ctx context.Context, counsellorID uuid.UUID, ids []uuid.UUID) error
	Invalidate(ctx context.Context, counsellorIDs ...uuid.UUID) error
}

type UsersClient interface {
	User(ctx context.Context, userID uuid.UUID) (entity.User, error)
}

type Producer interface {
	SendRoleChanged(ctx context.Context, change entity.RoleChange)
}

const (
	checkViewUserData  = "view_user_data"
	checkTransferAdmin = "transfer_admin_rights"
	checkAssignment    = "manage_counsellees"
)

type Service struct {
	repo     Repository
	cache    Cache
	users    UsersClient
	producer Producer
	now      func() time.Time
}

func New(repo Repository, cache Cache, users UsersClient, producer Producer) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		users:    users,
		producer: producer,
		now:      time.Now,
	}
}

func (s *Service) AccessProfile(ctx context.Context) (entity.AccessProfile, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return entity.AccessProfile{}, err
	}

	return entity.NewAccessProfile(actor), nil
}

// CanViewUser decides whether the authenticated user may see targetID's data.
func (s *Service) CanViewUser(ctx context.Context, targetID uuid.UUID) (bool, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return false, err
	}

	allowed, err := s.canView(ctx, actor, targetID)
	if err != nil {
		return false, err
	}

	metrics.ObserveDecision(checkViewUserData, allowed)

	slog.DebugContext(ctx, "View check",
		"target_user_id", targetID, "role", actor.Role, "allowed", allowed)

	return allowed, nil
}

// Authorize answers a permission check for the authenticated user. Permissions that
// depend on whose data is touched need targetID.
func (s *Service) Authorize(ctx context.Context, permission entity.Permission, targetID *uuid.UUID) (bool, error) {
	if permission == entity.PermissionViewUserData {
		if targetID == nil {
			return false, fmt.Errorf("%w: target_user_id is required for %s", entity.ErrInvalidArgument, permission)
		}

		return s.CanViewUser(ctx, *targetID)
	}

	actor, err := s.actor(ctx)
	if err != nil {
		return false, err
	}

	allowed := entity.HasPermission(actor.Role, permission)

	metrics.ObserveDecision(string(permission), allowed)

	slog.DebugContext(ctx, "Permission check",
		"permission", permission, "role", actor.Role, "allowed", allowed)

	return allowed, nil
}

func (s *Service) Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]entity.User, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canView(ctx, actor, counsellorID)
	if err != nil {
		return nil, err
	}

	metrics.ObserveDecision(checkViewUserData, allowed)

	if !allowed {
		slog.WarnContext(ctx, "Counsellee list denied",
			"counsellor_id", counsellorID, "role", actor.Role)
		return nil, entity.ErrPermissionDenied
	}

	users, err := s.repo.Counsellees(ctx, counsellorID)
	if err != nil {
		return nil, fmt.Errorf("get counsellees of %s: %w", counsellorID, err)
	}

	return users, nil
}

func (s *Service) AssignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	err = s.checkAssignmentRights(ctx, actor, counsellorID)
	if err != nil {
		return err
	}

	if counsellorID == counselleeID {
		return fmt.Errorf("%w: counsellor cannot counsel themselves", entity.ErrInvalidArgument)
	}

	counsellee, err := s.resolveUser(ctx, counselleeID)
	if err != nil {
		return fmt.Errorf("get counsellee %s: %w", counselleeID, err)
	}

	// Counsellee data sits below the counsellor's own level.
	if counsellee.Role.Rank() >= entity.RoleCounsellor.Rank() {
		slog.WarnContext(ctx, "Counsellee with a counsellor or higher role rejected",
			"counsellor_id", counsellorID, "counsellee_id", counselleeID, "counsellee_role", counsellee.Role)
		return fmt.Errorf("%w: only devotees and inmates can be counsellees", entity.ErrInvalidArgument)
	}

	err = s.repo.AssignCounsellee(ctx, entity.CounselleeAssignment{
		CounsellorID: counsellorID,
		CounselleeID: counselleeID,
		AssignedBy:   actor.ID,
		AssignedAt:   s.now(),
	})
	if err != nil {
		return fmt.Errorf("assign counsellee %s to %s: %w", counselleeID, counsellorID, err)
	}

	s.invalidate(ctx, counsellorID)

	slog.InfoContext(ctx, "Counsellee assigned",
		"counsellor_id", counsellorID, "counsellee_id", counselleeID)

	return nil
}

func (s *Service) UnassignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}

	err = s.checkAssignmentRights(ctx, actor, counsellorID)
	if err != nil {
		return err
	}

	err = s.repo.UnassignCounsellee(ctx, counsellorID, counselleeID)
	if err != nil {
		return fmt.Errorf("unassign counsellee %s from %s: %w", counselleeID, counsellorID, err)
	}

	s.invalidate(ctx, counsellorID)

	slog.InfoContext(ctx, "Counsellee unassigned",
		"counsellor_id", counsellorID, "counsellee_id", counselleeID)

	return nil
}

// TransferAdminRights hands the authenticated user's role to toUserID. The sender drops
// to the default role and their counsellees follow the role.
func (s *Service) TransferAdminRights(ctx context.Context, toUserID uuid.UUID) (entity.AdminRightsTransfer, error) {
	ctx = logger.SetLogType(ctx, "security")

	actor, err := s.actor(ctx)
	if err != nil {
		return entity.AdminRightsTransfer{}, err
	}

	allowed := entity.CanTransferAdminRights(actor.Role)
	metrics.ObserveDecision(checkTransferAdmin, allowed)

	if !allowed {
		slog.WarnContext(ctx, "Admin rights transfer denied",
			"role", actor.Role, "to_user_id", toUserID)
		return entity.AdminRightsTransfer{}, entity.ErrPermissionDenied
	}

	if toUserID == actor.ID {
		return entity.AdminRightsTransfer{}, entity.ErrSelfTransfer
	}

	receiver, err := s.resolveUser(ctx, toUserID)
	if err != nil {
		return entity.AdminRightsTransfer{}, fmt.Errorf("get receiver %s: %w", toUserID, err)
	}

	if receiver.Role.Rank() > actor.Role.Rank() {
		slog.WarnContext(ctx, "Admin rights transfer to a higher role rejected",
			"role", actor.Role, "to_user_id", toUserID, "to_role", receiver.Role)
		return entity.AdminRightsTransfer{}, fmt.Errorf("%w: receiver already holds a higher role", entity.ErrInvalidArgument)
	}

	transfer := entity.AdminRightsTransfer{
		ID:            uuid.Must(uuid.NewV4()),
		FromUserID:    actor.ID,
		ToUserID:      receiver.ID,
		Role:          actor.Role,
		FromNewRole:   entity.DefaultRole,
		ToPrevRole:    receiver.Role,
		TransferredAt: s.now(),
	}

	affected, err := s.repo.TransferAdminRights(ctx, transfer)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to transfer admin rights",
			"to_user_id", toUserID, "role", actor.Role, "error", err)
		return entity.AdminRightsTransfer{}, fmt.Errorf("transfer admin rights: %w", err)
	}

	s.invalidate(ctx, append([]uuid.UUID{actor.ID, receiver.ID}, affected...)...)

	if s.producer != nil {
		s.producer.SendRoleChanged(ctx, entity.RoleChange{
			UserID:    receiver.ID,
			OldRole:   transfer.ToPrevRole,
			NewRole:   transfer.Role,
			ChangedBy: actor.ID,
			ChangedAt: transfer.TransferredAt,
		})
		s.producer.SendRoleChanged(ctx, entity.RoleChange{
			UserID:    actor.ID,
			OldRole:   transfer.Role,
			NewRole:   transfer.FromNewRole,
			ChangedBy: actor.ID,
			ChangedAt: transfer.TransferredAt,
		})
	}

	slog.InfoContext(ctx, "Admin rights transferred",
		"transfer_id", transfer.ID,
		"to_user_id", receiver.ID,
		"role", transfer.Role,
		"to_prev_role", transfer.ToPrevRole,
	)

	return transfer, nil
}

func (s *Service) AdminRightsTransfers(ctx context.Context) ([]entity.AdminRightsTransfer, error) {
	actorID, err := entity.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	transfers, err := s.repo.AdminRightsTransfers(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get admin rights transfers: %w", err)
	}

	return transfers, nil
}

// RegisterUser stores a user announced by the users service. Existing users keep their
// stored role.
func (s *Service) RegisterUser(ctx context.Context, u entity.User) error {
	if u.ID.IsNil() {
		return fmt.Errorf("%w: user id is required", entity.ErrInvalidArgument)
	}

	if !u.Role.IsValid() {
		slog.WarnContext(ctx, "Unrecognized role for new user, using default",
			"user_id", u.ID, "role", u.Role, "default_role", entity.DefaultRole)

		u.Role = entity.DefaultRole
	}

	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.ID, err)
	}

	if created {
		slog.InfoContext(ctx, "User registered", "user_id", u.ID, "role", u.Role)
	} else {
		slog.DebugContext(ctx, "User already registered", "user_id", u.ID)
	}

	return nil
}

func (s *Service) canView(ctx context.Context, actor entity.User, targetID uuid.UUID) (bool, error) {
	var assigned []string

	if entity.DataAccessLevelOf(actor.Role) == entity.AccessCounselleeData && targetID != actor.ID {
		ids, err := s.counselleeIDs(ctx, actor.ID)
		if err != nil {
			return false, err
		}

		assigned = entity.IDStrings(ids)
	}

	return entity.CanViewUserData(actor.Role, targetID.String(), actor.ID.String(), assigned), nil
}

// checkAssignmentRights lets a counsellor manage their own list and department-wide
// roles manage anyone's.
func (s *Service) checkAssignmentRights(ctx context.Context, actor entity.User, counsellorID uuid.UUID) error {
	allowed := actor.ID == counsellorID || entity.DataAccessLevelOf(actor.Role).CanSeeDepartment()
	metrics.ObserveDecision(checkAssignment, allowed)

	if !allowed {
		slog.WarnContext(ctx, "Counsellee management denied",
			"counsellor_id", counsellorID, "role", actor.Role)
		return entity.ErrPermissionDenied
	}

	counsellor, err := s.resolveUser(ctx, counsellorID)
	if err != nil {
		return fmt.Errorf("get counsellor %s: %w", counsellorID, err)
	}

	if counsellor.Role != entity.RoleCounsellor {
		return entity.ErrNotCounsellor
	}

	return nil
}

func (s *Service) counselleeIDs(ctx context.Context, counsellorID uuid.UUID) ([]uuid.UUID, error) {
	ids, ok, err := s.cache.Counsellees(ctx, counsellorID)
	if err != nil {
		slog.WarnContext(ctx, "Counsellee cache read failed", "counsellor_id", counsellorID, "error", err)
	} else if ok {
		return ids, nil
	}

	ids, err = s.repo.CounselleeIDs(ctx, counsellorID)
	if err != nil {
		return nil, fmt.Errorf("get counsellee ids of %s: %w", counsellorID, err)
	}

	err = s.cache.SetCounsellees(ctx, counsellorID, ids)
	if err != nil {
		slog.WarnContext(ctx, "Counsellee cache write failed", "counsellor_id", counsellorID, "error", err)
	}

	return ids, nil
}

func (s *Service) invalidate(ctx context.Context, counsellorIDs ...uuid.UUID) {
	err := s.cache.Invalidate(ctx, counsellorIDs...)
	if err != nil {
		slog.WarnContext(ctx, "Counsellee cache invalidation failed", "counsellor_ids", counsellorIDs, "error", err)
	}
}

func (s *Service) actor(ctx context.Context) (entity.User, error) {
	actorID, err := entity.UserIDFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	return s.resolveUser(ctx, actorID)
}

// resolveUser falls back to the users service for IDs not seen on the users topic yet.
func (s *Service) resolveUser(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	u, err := s.repo.UserByID(ctx, userID)
	if err == nil {
		return u, nil
	}

	if !errors.Is(err, entity.ErrUserNotFound) || s.users == nil {
		return entity.User{}, err
	}

	u, err = s.users.User(ctx, userID)
	if err != nil {
		return entity.User{}, fmt.Errorf("fetch user %s from users service: %w", userID, err)
	}

	if u.ID != userID {
		slog.ErrorContext(ctx, "Users service answered with another user",
			"user_id", userID, "got_user_id", u.ID)
		return entity.User{}, fmt.Errorf("users service returned user %s for %s", u.ID, userID)
	}

	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return entity.User{}, fmt.Errorf("store user %s: %w", userID, err)
	}

	if !created {
		return s.repo.UserByID(ctx, userID)
	}

	slog.InfoContext(ctx, "User imported from users service", "user_id", userID, "role", u.Role)

	return u, nil
}
