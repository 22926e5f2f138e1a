package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type boxRepositoryImpl struct {
	db *database.DB
}

func NewBoxRepository(db *database.DB) inventory.BoxRepository {
	return &boxRepositoryImpl{db: db}
}

const boxColumns = `
	id, contents_type, contents_id, batch_id, quantity_in_box,
	status, location, barcode, created_at, updated_at
`

func scanBox(row pgx.Row) (inventory.Box, error) {
	var b inventory.Box
	err := row.Scan(
		&b.ID,
		&b.ContentsType,
		&b.ContentsID,
		&b.BatchID,
		&b.QuantityInBox,
		&b.Status,
		&b.Location,
		&b.Barcode,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *boxRepositoryImpl) Create(ctx context.Context, box inventory.Box) (inventory.Box, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO boxes (
			id, contents_type, contents_id, batch_id, quantity_in_box,
			status, location, barcode, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		box.ContentsType, box.ContentsID, box.BatchID, box.QuantityInBox,
		box.Status, box.Location, box.Barcode,
	).Scan(&box.ID, &box.CreatedAt, &box.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return inventory.Box{}, inventory.ErrBarcodeExists
		}
		return inventory.Box{}, err
	}

	return box, nil
}

func (r *boxRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Box, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBox(q.QueryRow(ctx, `SELECT `+boxColumns+` FROM boxes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.Box{}, inventory.ErrBoxNotFound
	}
	return b, err
}

func (r *boxRepositoryImpl) GetByBarcode(ctx context.Context, barcode string) (inventory.Box, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBox(q.QueryRow(ctx, `SELECT `+boxColumns+` FROM boxes WHERE barcode = $1`, barcode))
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.Box{}, inventory.ErrBoxNotFound
	}
	return b, err
}

func (r *boxRepositoryImpl) ListByBatchID(ctx context.Context, batchID string) ([]inventory.Box, error) {
	return r.listWhere(ctx, `batch_id = $1`, batchID)
}

func (r *boxRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]inventory.Box, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + boxColumns + ` FROM boxes WHERE ` + where + ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boxes []inventory.Box
	for rows.Next() {
		b, err := scanBox(rows)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, rows.Err()
}

// DecrementQuantity takes qty off the box in one conditional update. The
// status and quantity guards in the WHERE clause are what make concurrent
// sales against the same box safe; a guard miss is classified afterwards.
func (r *boxRepositoryImpl) DecrementQuantity(ctx context.Context, id string, qty int) (inventory.Box, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE boxes
		SET quantity_in_box = quantity_in_box - $2,
		    status = CASE WHEN quantity_in_box - $2 = 0 THEN 'sold' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'in_stock' AND quantity_in_box >= $2
		RETURNING ` + boxColumns + `
	`

	b, err := scanBox(q.QueryRow(ctx, query, id, qty))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return inventory.Box{}, err
	}

	// Guard missed: figure out which condition failed.
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return inventory.Box{}, getErr
	}
	if current.Status != inventory.BoxInStock {
		return inventory.Box{}, inventory.ErrBoxNotInStock
	}
	return inventory.Box{}, inventory.ErrInsufficientBoxQuantity
}

func (r *boxRepositoryImpl) SetStatus(ctx context.Context, id string, status inventory.BoxStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE boxes SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return inventory.ErrBoxNotFound
	}
	return nil
}

const overviewQuery = `
	SELECT b.contents_type, b.contents_id, i.sku, i.name, b.location,
	       COUNT(*), COALESCE(SUM(b.quantity_in_box), 0)
	FROM boxes b
	INNER JOIN (
		SELECT id, sku, name FROM products
		UNION ALL
		SELECT id, sku, name FROM components
	) i ON b.contents_id = i.id
	WHERE b.status = 'in_stock'
`

func (r *boxRepositoryImpl) Overview(ctx context.Context) ([]inventory.StockOverview, error) {
	return r.overview(ctx, overviewQuery+`
		GROUP BY b.contents_type, b.contents_id, i.sku, i.name, b.location
		ORDER BY i.name, b.location
	`)
}

func (r *boxRepositoryImpl) OverviewByLocation(ctx context.Context, location string) ([]inventory.StockOverview, error) {
	return r.overview(ctx, overviewQuery+`
		AND b.location = $1
		GROUP BY b.contents_type, b.contents_id, i.sku, i.name, b.location
		ORDER BY i.name
	`, location)
}

func (r *boxRepositoryImpl) overview(ctx context.Context, query string, args ...any) ([]inventory.StockOverview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []inventory.StockOverview
	for rows.Next() {
		var o inventory.StockOverview
		if err := rows.Scan(&o.ContentsType, &o.ContentsID, &o.SKU, &o.Name, &o.Location, &o.BoxCount, &o.TotalQuantity); err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}
