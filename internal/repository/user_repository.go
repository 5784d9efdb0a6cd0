package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/access/internal/entity"
)

var userColumns = []string{"user_id", "name", "email", "role", "department", "created_at", "updated_at"}

func (r *Repository) UserByID(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	sqlQuery, args, err := psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return entity.User{}, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

// CreateUser inserts u unless a user with the same ID exists. It reports whether a row
// was written.
func (r *Repository) CreateUser(ctx context.Context, u entity.User) (bool, error) {
	sqlQuery, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.Role, u.Department, u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanUser(row pgx.Row) (entity.User, error) {
	var (
		u    entity.User
		role string
	)

	err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Department, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return entity.User{}, err
	}

	// Stored values are not trusted blindly: anything unrecognized behaves as unknown.
	u.Role = entity.ParseRole(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()

	return u, nil
}
