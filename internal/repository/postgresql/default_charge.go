package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/payroll"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type defaultChargeRepositoryImpl struct {
	db *database.DB
}

func NewDefaultChargeRepository(db *database.DB) payroll.DefaultChargeRepository {
	return &defaultChargeRepositoryImpl{db: db}
}

func scanDefaultCharge(row pgx.Row) (payroll.DefaultCharge, error) {
	var dc payroll.DefaultCharge
	err := row.Scan(
		&dc.ID,
		&dc.ChargeName,
		&dc.PenaltyFee,
		&dc.Description,
		&dc.CreatedBy,
		&dc.CreatedAt,
		&dc.UpdatedAt,
	)
	return dc, err
}

func (r *defaultChargeRepositoryImpl) Create(ctx context.Context, charge payroll.DefaultCharge) (payroll.DefaultCharge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO default_charges (
			id, charge_name, penalty_fee, description, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		charge.ChargeName, charge.PenaltyFee, charge.Description, charge.CreatedBy,
	).Scan(&charge.ID, &charge.CreatedAt, &charge.UpdatedAt)
	if err != nil {
		return payroll.DefaultCharge{}, err
	}

	return charge, nil
}

func (r *defaultChargeRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.DefaultCharge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, charge_name, penalty_fee, description, created_by, created_at, updated_at
		FROM default_charges
		WHERE id = $1
	`

	dc, err := scanDefaultCharge(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.DefaultCharge{}, payroll.ErrDefaultChargeNotFound
	}
	return dc, err
}

func (r *defaultChargeRepositoryImpl) List(ctx context.Context) ([]payroll.DefaultCharge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, charge_name, penalty_fee, description, created_by, created_at, updated_at
		FROM default_charges
		ORDER BY charge_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []payroll.DefaultCharge
	for rows.Next() {
		dc, err := scanDefaultCharge(rows)
		if err != nil {
			return nil, err
		}
		charges = append(charges, dc)
	}
	return charges, rows.Err()
}

func (r *defaultChargeRepositoryImpl) Update(ctx context.Context, req payroll.UpdateDefaultChargeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.ChargeName != nil {
		add("charge_name", *req.ChargeName)
	}
	if req.PenaltyFee != nil {
		add("penalty_fee", *req.PenaltyFee)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}

	query := `UPDATE default_charges SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrDefaultChargeNotFound
	}
	return nil
}

func (r *defaultChargeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM default_charges WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return payroll.ErrDefaultChargeNotFound
	}
	return nil
}
