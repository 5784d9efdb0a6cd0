package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/microservices/access/internal/entity"
)

const pgUniqueViolation = "23505"

func (r *Repository) CounselleeIDs(ctx context.Context, counsellorID uuid.UUID) ([]uuid.UUID, error) {
	sqlQuery, args, err := psql.Select("counsellee_id").
		From("counsellee_assignments").
		Where(sq.Eq{"counsellor_id": counsellorID}).
		OrderBy("assigned_at", "counsellee_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]entity.User, error) {
	cols := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		cols = append(cols, "u."+c)
	}

	sqlQuery, args, err := psql.Select(cols...).
		From("counsellee_assignments a").
		Join("users u ON u.user_id = a.counsellee_id").
		Where(sq.Eq{"a.counsellor_id": counsellorID}).
		OrderBy("a.assigned_at", "u.user_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) AssignCounsellee(ctx context.Context, a entity.CounselleeAssignment) error {
	sqlQuery, args, err := psql.Insert("counsellee_assignments").
		Columns("counsellor_id", "counsellee_id", "assigned_by", "assigned_at").
		Values(a.CounsellorID, a.CounselleeID, a.AssignedBy, a.AssignedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.ErrAlreadyAssigned
		}

		return err
	}

	return nil
}

func (r *Repository) UnassignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error {
	sqlQuery, args, err := psql.Delete("counsellee_assignments").
		Where(sq.Eq{"counsellor_id": counsellorID, "counsellee_id": counselleeID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
