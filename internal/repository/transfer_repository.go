package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/access/internal/entity"
)

// TransferAdminRights rewrites both roles, hands the sender's counsellees to the
// receiver and records t, all in one transaction. Both role updates only apply while
// the stored roles still match t, otherwise entity.ErrRoleConflict is returned. The
// result lists every other counsellor whose counsellee list changed.
func (r *Repository) TransferAdminRights(ctx context.Context, t entity.AdminRightsTransfer) ([]uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	// Sender first: a second transfer of the same role blocks on this row and then
	// finds the role already gone.
	for _, u := range []struct {
		id      uuid.UUID
		oldRole entity.Role
		newRole entity.Role
	}{
		{id: t.FromUserID, oldRole: t.Role, newRole: t.FromNewRole},
		{id: t.ToUserID, oldRole: t.ToPrevRole, newRole: t.Role},
	} {
		err = updateRole(ctx, tx, u.id, u.oldRole, u.newRole, t.TransferredAt)
		if err != nil {
			return nil, err
		}
	}

	// The receiver now holds a counsellor or higher role and stops being anyone's
	// counsellee.
	sqlQuery, args, err := psql.Delete("counsellee_assignments").
		Where(sq.Eq{"counsellee_id": t.ToUserID}).
		Suffix("RETURNING counsellor_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("drop receiver assignments: %w", err)
	}

	affected, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("drop receiver assignments: %w", err)
	}

	sqlQuery, args, err = psql.Delete("counsellee_assignments").
		Where(sq.Eq{"counsellor_id": t.FromUserID}).
		Where(sq.Expr("counsellee_id IN (SELECT counsellee_id FROM counsellee_assignments WHERE counsellor_id = ?)", t.ToUserID)).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("drop overlapping assignments: %w", err)
	}

	sqlQuery, args, err = psql.Update("counsellee_assignments").
		Set("counsellor_id", t.ToUserID).
		Where(sq.Eq{"counsellor_id": t.FromUserID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("move assignments: %w", err)
	}

	sqlQuery, args, err = psql.Insert("admin_rights_transfers").
		Columns("id", "from_user_id", "to_user_id", "role", "from_new_role", "to_prev_role", "transferred_at").
		Values(t.ID, t.FromUserID, t.ToUserID, t.Role, t.FromNewRole, t.ToPrevRole, t.TransferredAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("insert transfer: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return affected, nil
}

// updateRole moves userID from oldRole to newRole. It tells a missing user apart from
// one whose role no longer matches.
func updateRole(ctx context.Context, tx pgx.Tx, userID uuid.UUID, oldRole, newRole entity.Role, at time.Time) error {
	sqlQuery, args, err := psql.Update("users").
		Set("role", newRole).
		Set("updated_at", at).
		Where(sq.Eq{"user_id": userID, "role": oldRole}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("update role of %s: %w", userID, err)
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	sqlQuery, args, err = psql.Select("count(*)").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	var count int

	err = tx.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}

	if count == 0 {
		return fmt.Errorf("update role of %s: %w", userID, entity.ErrUserNotFound)
	}

	return fmt.Errorf("update role of %s from %s: %w", userID, oldRole, entity.ErrRoleConflict)
}

func (r *Repository) AdminRightsTransfers(ctx context.Context, userID uuid.UUID) ([]entity.AdminRightsTransfer, error) {
	sqlQuery, args, err := psql.Select("id", "from_user_id", "to_user_id", "role", "from_new_role", "to_prev_role", "transferred_at").
		From("admin_rights_transfers").
		Where(sq.Or{sq.Eq{"from_user_id": userID}, sq.Eq{"to_user_id": userID}}).
		OrderBy("transferred_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]entity.AdminRightsTransfer, 0)

	for rows.Next() {
		var t entity.AdminRightsTransfer

		var role, fromNewRole, toPrevRole string

		err := rows.Scan(&t.ID, &t.FromUserID, &t.ToUserID, &role, &fromNewRole, &toPrevRole, &t.TransferredAt)
		if err != nil {
			return nil, err
		}

		t.Role = entity.Role(role)
		t.FromNewRole = entity.Role(fromNewRole)
		t.ToPrevRole = entity.Role(toPrevRole)
		t.TransferredAt = t.TransferredAt.UTC()

		transfers = append(transfers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transfers, nil
}
