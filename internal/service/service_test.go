package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/access/internal/entity"
	"github.com/samandr77/microservices/access/internal/mocks"
	"github.com/samandr77/microservices/access/internal/service"
	"github.com/samandr77/microservices/access/pkg/cache"
)

type deps struct {
	repo     *mocks.MockRepository
	cache    *mocks.MockCache
	users    *mocks.MockUsersClient
	producer *mocks.MockProducer
}

func newService(t *testing.T) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     mocks.NewMockRepository(ctrl),
		cache:    mocks.NewMockCache(ctrl),
		users:    mocks.NewMockUsersClient(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}

	return service.New(d.repo, d.cache, d.users, d.producer), d
}

func newUser(role entity.Role) entity.User {
	return entity.User{ID: uuid.Must(uuid.NewV4()), Name: "test", Role: role}
}

func actorCtx(u entity.User) context.Context {
	return entity.SetUserIDToContext(context.Background(), u.ID)
}

func TestService_AccessProfile(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleHOD)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

	got, err := s.AccessProfile(actorCtx(actor))
	require.NoError(t, err)
	require.Equal(t, actor.ID, got.UserID)
	require.Equal(t, "HOD", got.DisplayName)
	require.Equal(t, entity.AccessDepartmentData, got.DataAccessLevel)
	require.True(t, got.CanManageServices)
	require.Contains(t, got.Permissions, entity.PermissionTransferAdminRights)
}

func TestService_AccessProfile_Unauthenticated(t *testing.T) {
	t.Parallel()

	s, _ := newService(t)

	_, err := s.AccessProfile(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_AccessProfile_ImportsUnknownUser(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleInmate)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(entity.User{}, entity.ErrUserNotFound)
	d.users.EXPECT().User(gomock.Any(), actor.ID).Return(actor, nil)
	d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u entity.User) (bool, error) {
			require.Equal(t, actor.ID, u.ID)
			require.Equal(t, entity.RoleInmate, u.Role)
			require.False(t, u.CreatedAt.IsZero())

			return true, nil
		})

	got, err := s.AccessProfile(actorCtx(actor))
	require.NoError(t, err)
	require.Equal(t, entity.RoleInmate, got.Role)
}

func TestService_AccessProfile_UsersServiceFails(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleInmate)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(entity.User{}, entity.ErrUserNotFound)
	d.users.EXPECT().User(gomock.Any(), actor.ID).Return(entity.User{}, entity.ErrUserNotFound)

	_, err := s.AccessProfile(actorCtx(actor))
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestService_AccessProfile_UsersServiceReturnsOtherUser(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleDevotee)
	other := newUser(entity.RoleTemplePresident)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(entity.User{}, entity.ErrUserNotFound)
	d.users.EXPECT().User(gomock.Any(), actor.ID).Return(other, nil)

	_, err := s.AccessProfile(actorCtx(actor))
	require.Error(t, err)
}

func TestService_CanViewUser(t *testing.T) {
	t.Parallel()

	t.Run("devotee self", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleDevotee)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		allowed, err := s.CanViewUser(actorCtx(actor), actor.ID)
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run("devotee other", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleDevotee)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		allowed, err := s.CanViewUser(actorCtx(actor), uuid.Must(uuid.NewV4()))
		require.NoError(t, err)
		require.False(t, allowed)
	})

	t.Run("counsellor cache hit", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		assigned := uuid.Must(uuid.NewV4())
		other := uuid.Must(uuid.NewV4())

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)
		d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return([]uuid.UUID{assigned}, true, nil).Times(2)

		allowed, err := s.CanViewUser(actorCtx(actor), assigned)
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, err = s.CanViewUser(actorCtx(actor), other)
		require.NoError(t, err)
		require.False(t, allowed)
	})

	t.Run("counsellor cache miss fills cache", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		assigned := uuid.Must(uuid.NewV4())

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return(nil, false, nil)
		d.repo.EXPECT().CounselleeIDs(gomock.Any(), actor.ID).Return([]uuid.UUID{assigned}, nil)
		d.cache.EXPECT().SetCounsellees(gomock.Any(), actor.ID, []uuid.UUID{assigned}).Return(nil)

		allowed, err := s.CanViewUser(actorCtx(actor), assigned)
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run("counsellor cache error falls back to repository", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return(nil, false, errors.New("connection refused"))
		d.repo.EXPECT().CounselleeIDs(gomock.Any(), actor.ID).Return([]uuid.UUID{}, nil)
		d.cache.EXPECT().SetCounsellees(gomock.Any(), actor.ID, gomock.Any()).Return(errors.New("connection refused"))

		allowed, err := s.CanViewUser(actorCtx(actor), uuid.Must(uuid.NewV4()))
		require.NoError(t, err)
		require.False(t, allowed)
	})

	t.Run("counsellor self skips lookup", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		allowed, err := s.CanViewUser(actorCtx(actor), actor.ID)
		require.NoError(t, err)
		require.True(t, allowed)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		dbErr := errors.New("db down")

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return(nil, false, nil)
		d.repo.EXPECT().CounselleeIDs(gomock.Any(), actor.ID).Return(nil, dbErr)

		_, err := s.CanViewUser(actorCtx(actor), uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, dbErr)
	})

	for _, role := range []entity.Role{entity.RoleHOD, entity.RoleTemplePresident} {
		role := role

		t.Run(string(role)+" anyone", func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)
			actor := newUser(role)
			d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

			allowed, err := s.CanViewUser(actorCtx(actor), uuid.Must(uuid.NewV4()))
			require.NoError(t, err)
			require.True(t, allowed)
		})
	}

	t.Run("unknown stored role", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleUnknown)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		allowed, err := s.CanViewUser(actorCtx(actor), uuid.Must(uuid.NewV4()))
		require.NoError(t, err)
		require.False(t, allowed)
	})
}

func TestService_Authorize(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		role       entity.Role
		permission entity.Permission
		want       bool
	}{
		{name: "devotee manage services", role: entity.RoleDevotee, permission: entity.PermissionManageServices, want: false},
		{name: "inmate availability", role: entity.RoleInmate, permission: entity.PermissionCreateAvailabilitySheets, want: false},
		{name: "counsellor manage services", role: entity.RoleCounsellor, permission: entity.PermissionManageServices, want: true},
		{name: "hod availability", role: entity.RoleHOD, permission: entity.PermissionCreateAvailabilitySheets, want: true},
		{name: "president transfer", role: entity.RoleTemplePresident, permission: entity.PermissionTransferAdminRights, want: true},
		{name: "unknown permission", role: entity.RoleTemplePresident, permission: "launch_rockets", want: false},
		{name: "unknown role", role: "bogus-role", permission: entity.PermissionAdminAccess, want: false},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)
			actor := newUser(tt.role)
			d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

			got, err := s.Authorize(actorCtx(actor), tt.permission, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_Authorize_ViewUserData(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleDevotee)

	_, err := s.Authorize(actorCtx(actor), entity.PermissionViewUserData, nil)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

	allowed, err := s.Authorize(actorCtx(actor), entity.PermissionViewUserData, &actor.ID)
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestService_Counsellees(t *testing.T) {
	t.Parallel()

	t.Run("own list", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		want := []entity.User{newUser(entity.RoleDevotee)}

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().Counsellees(gomock.Any(), actor.ID).Return(want, nil)

		got, err := s.Counsellees(actorCtx(actor), actor.ID)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("other counsellor denied", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		other := uuid.Must(uuid.NewV4())

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return([]uuid.UUID{}, true, nil)

		_, err := s.Counsellees(actorCtx(actor), other)
		require.ErrorIs(t, err, entity.ErrPermissionDenied)
	})
}

func TestService_AssignCounsellee(t *testing.T) {
	t.Parallel()

	t.Run("counsellor assigns to self", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		counsellee := newUser(entity.RoleDevotee)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)
		d.repo.EXPECT().UserByID(gomock.Any(), counsellee.ID).Return(counsellee, nil)
		d.repo.EXPECT().AssignCounsellee(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entity.CounselleeAssignment) error {
				require.Equal(t, actor.ID, a.CounsellorID)
				require.Equal(t, counsellee.ID, a.CounselleeID)
				require.Equal(t, actor.ID, a.AssignedBy)
				require.False(t, a.AssignedAt.IsZero())

				return nil
			})
		d.cache.EXPECT().Invalidate(gomock.Any(), actor.ID).Return(nil)

		require.NoError(t, s.AssignCounsellee(actorCtx(actor), actor.ID, counsellee.ID))
	})

	t.Run("hod assigns to a counsellor", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleHOD)
		counsellor := newUser(entity.RoleCounsellor)
		counsellee := newUser(entity.RoleInmate)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), counsellor.ID).Return(counsellor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), counsellee.ID).Return(counsellee, nil)
		d.repo.EXPECT().AssignCounsellee(gomock.Any(), gomock.Any()).Return(nil)
		d.cache.EXPECT().Invalidate(gomock.Any(), counsellor.ID).Return(errors.New("redis down"))

		require.NoError(t, s.AssignCounsellee(actorCtx(actor), counsellor.ID, counsellee.ID))
	})

	t.Run("counsellor cannot assign for another counsellor", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		err := s.AssignCounsellee(actorCtx(actor), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrPermissionDenied)
	})

	t.Run("devotee cannot manage own list", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleDevotee)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)

		err := s.AssignCounsellee(actorCtx(actor), actor.ID, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrNotCounsellor)
	})

	t.Run("target is not a counsellor", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleTemplePresident)
		notCounsellor := newUser(entity.RoleHOD)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), notCounsellor.ID).Return(notCounsellor, nil)

		err := s.AssignCounsellee(actorCtx(actor), notCounsellor.ID, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrNotCounsellor)
	})

	t.Run("self assignment", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)

		err := s.AssignCounsellee(actorCtx(actor), actor.ID, actor.ID)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	for _, role := range []entity.Role{entity.RoleCounsellor, entity.RoleHOD, entity.RoleTemplePresident} {
		role := role

		t.Run("counsellee with role "+string(role), func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)
			actor := newUser(entity.RoleCounsellor)
			counsellee := newUser(role)

			d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)
			d.repo.EXPECT().UserByID(gomock.Any(), counsellee.ID).Return(counsellee, nil)

			err := s.AssignCounsellee(actorCtx(actor), actor.ID, counsellee.ID)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		counsellee := newUser(entity.RoleDevotee)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(2)
		d.repo.EXPECT().UserByID(gomock.Any(), counsellee.ID).Return(counsellee, nil)
		d.repo.EXPECT().AssignCounsellee(gomock.Any(), gomock.Any()).Return(entity.ErrAlreadyAssigned)

		err := s.AssignCounsellee(actorCtx(actor), actor.ID, counsellee.ID)
		require.ErrorIs(t, err, entity.ErrAlreadyAssigned)
	})
}

func TestService_AssignCounsellee_CannotReachHigherRoles(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleCounsellor)
	president := newUser(entity.RoleTemplePresident)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).AnyTimes()
	d.repo.EXPECT().UserByID(gomock.Any(), president.ID).Return(president, nil)
	d.cache.EXPECT().Counsellees(gomock.Any(), actor.ID).Return([]uuid.UUID{}, true, nil).Times(2)

	allowed, err := s.CanViewUser(actorCtx(actor), president.ID)
	require.NoError(t, err)
	require.False(t, allowed)

	err = s.AssignCounsellee(actorCtx(actor), actor.ID, president.ID)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	allowed, err = s.CanViewUser(actorCtx(actor), president.ID)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestService_UnassignCounsellee(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleCounsellor)
	counselleeID := uuid.Must(uuid.NewV4())

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil).Times(4)
	d.repo.EXPECT().UnassignCounsellee(gomock.Any(), actor.ID, counselleeID).Return(nil)
	d.cache.EXPECT().Invalidate(gomock.Any(), actor.ID).Return(nil)

	require.NoError(t, s.UnassignCounsellee(actorCtx(actor), actor.ID, counselleeID))

	d.repo.EXPECT().UnassignCounsellee(gomock.Any(), actor.ID, counselleeID).Return(entity.ErrNotFound)

	err := s.UnassignCounsellee(actorCtx(actor), actor.ID, counselleeID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_UnassignCounsellee_InvalidatesAfterCommit(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleHOD)
	counsellor := newUser(entity.RoleCounsellor)
	counselleeID := uuid.Must(uuid.NewV4())

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
	d.repo.EXPECT().UserByID(gomock.Any(), counsellor.ID).Return(counsellor, nil)

	gomock.InOrder(
		d.repo.EXPECT().UnassignCounsellee(gomock.Any(), counsellor.ID, counselleeID).Return(nil),
		d.cache.EXPECT().Invalidate(gomock.Any(), counsellor.ID).Return(nil),
	)

	require.NoError(t, s.UnassignCounsellee(actorCtx(actor), counsellor.ID, counselleeID))
}

// A view check that loaded the list before an unassignment committed must not put the
// old list back into the cache.
func TestService_UnassignCounsellee_DuringCacheRefill(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	m := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := service.New(repo, cache.NewCounselleeCache(rdb, time.Hour, time.Minute), nil, nil)

	counsellor := newUser(entity.RoleCounsellor)
	counselleeID := uuid.Must(uuid.NewV4())
	ctx := actorCtx(counsellor)

	repo.EXPECT().UserByID(gomock.Any(), counsellor.ID).Return(counsellor, nil).AnyTimes()

	gomock.InOrder(
		repo.EXPECT().CounselleeIDs(gomock.Any(), counsellor.ID).DoAndReturn(
			func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
				require.NoError(t, s.UnassignCounsellee(ctx, counsellor.ID, counselleeID))
				return []uuid.UUID{counselleeID}, nil
			}),
		repo.EXPECT().UnassignCounsellee(gomock.Any(), counsellor.ID, counselleeID).Return(nil),
		repo.EXPECT().CounselleeIDs(gomock.Any(), counsellor.ID).Return([]uuid.UUID{}, nil),
	)

	// Started before the unassignment, so it still sees the old list.
	allowed, err := s.CanViewUser(ctx, counselleeID)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = s.CanViewUser(ctx, counselleeID)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestService_TransferAdminRights(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleHOD)
	receiver := newUser(entity.RoleCounsellor)

	d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
	d.repo.EXPECT().UserByID(gomock.Any(), receiver.ID).Return(receiver, nil)
	formerCounsellor := uuid.Must(uuid.NewV4())

	d.repo.EXPECT().TransferAdminRights(gomock.Any(), gomock.Any()).Return([]uuid.UUID{formerCounsellor}, nil)
	d.cache.EXPECT().Invalidate(gomock.Any(), actor.ID, receiver.ID, formerCounsellor).Return(nil)

	var changes []entity.RoleChange

	d.producer.EXPECT().SendRoleChanged(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, c entity.RoleChange) { changes = append(changes, c) }).
		Times(2)

	got, err := s.TransferAdminRights(actorCtx(actor), receiver.ID)
	require.NoError(t, err)
	require.False(t, got.ID.IsNil())
	require.Equal(t, actor.ID, got.FromUserID)
	require.Equal(t, receiver.ID, got.ToUserID)
	require.Equal(t, entity.RoleHOD, got.Role)
	require.Equal(t, entity.RoleDevotee, got.FromNewRole)
	require.Equal(t, entity.RoleCounsellor, got.ToPrevRole)

	require.Len(t, changes, 2)
	require.Equal(t, receiver.ID, changes[0].UserID)
	require.Equal(t, entity.RoleCounsellor, changes[0].OldRole)
	require.Equal(t, entity.RoleHOD, changes[0].NewRole)
	require.Equal(t, actor.ID, changes[1].UserID)
	require.Equal(t, entity.RoleDevotee, changes[1].NewRole)
}

func TestService_TransferAdminRights_Rejected(t *testing.T) {
	t.Parallel()

	t.Run("role without transfer rights", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleInmate)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		_, err := s.TransferAdminRights(actorCtx(actor), uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrPermissionDenied)
	})

	t.Run("to self", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)

		_, err := s.TransferAdminRights(actorCtx(actor), actor.ID)
		require.ErrorIs(t, err, entity.ErrSelfTransfer)
	})

	t.Run("receiver outranks sender", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleCounsellor)
		receiver := newUser(entity.RoleTemplePresident)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), receiver.ID).Return(receiver, nil)

		_, err := s.TransferAdminRights(actorCtx(actor), receiver.ID)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("repository failure publishes nothing", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleTemplePresident)
		receiver := newUser(entity.RoleDevotee)
		dbErr := errors.New("serialization failure")

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), receiver.ID).Return(receiver, nil)
		d.repo.EXPECT().TransferAdminRights(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := s.TransferAdminRights(actorCtx(actor), receiver.ID)
		require.ErrorIs(t, err, dbErr)
	})

	t.Run("role changed since it was read", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		actor := newUser(entity.RoleHOD)
		receiver := newUser(entity.RoleDevotee)

		d.repo.EXPECT().UserByID(gomock.Any(), actor.ID).Return(actor, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), receiver.ID).Return(receiver, nil)
		d.repo.EXPECT().TransferAdminRights(gomock.Any(), gomock.Any()).Return(nil, entity.ErrRoleConflict)

		_, err := s.TransferAdminRights(actorCtx(actor), receiver.ID)
		require.ErrorIs(t, err, entity.ErrRoleConflict)
	})
}

func TestService_AdminRightsTransfers(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	actor := newUser(entity.RoleDevotee)
	want := []entity.AdminRightsTransfer{{ID: uuid.Must(uuid.NewV4()), ToUserID: actor.ID}}

	d.repo.EXPECT().AdminRightsTransfers(gomock.Any(), actor.ID).Return(want, nil)

	got, err := s.AdminRightsTransfers(actorCtx(actor))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_RegisterUser(t *testing.T) {
	t.Parallel()

	t.Run("known role kept", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		u := newUser(entity.RoleInmate)

		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entity.User) (bool, error) {
				require.Equal(t, entity.RoleInmate, got.Role)
				return true, nil
			})

		require.NoError(t, s.RegisterUser(context.Background(), u))
	})

	t.Run("unknown role defaults", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t)
		u := newUser("Temple_President")

		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entity.User) (bool, error) {
				require.Equal(t, entity.RoleDevotee, got.Role)
				return false, nil
			})

		require.NoError(t, s.RegisterUser(context.Background(), u))
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t)

		err := s.RegisterUser(context.Background(), entity.User{Role: entity.RoleDevotee})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}
