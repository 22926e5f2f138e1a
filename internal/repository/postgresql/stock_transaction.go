package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type stockTransactionRepositoryImpl struct {
	db *database.DB
}

func NewStockTransactionRepository(db *database.DB) inventory.StockTransactionRepository {
	return &stockTransactionRepositoryImpl{db: db}
}

const stockTransactionColumns = `
	id, type, batch_id, order_id, total_units, created_by, created_at
`

func scanStockTransaction(row pgx.Row) (inventory.StockTransaction, error) {
	var t inventory.StockTransaction
	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.BatchID,
		&t.OrderID,
		&t.TotalUnits,
		&t.CreatedBy,
		&t.CreatedAt,
	)
	return t, err
}

func (r *stockTransactionRepositoryImpl) Create(ctx context.Context, transaction inventory.StockTransaction) (inventory.StockTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stock_transactions (
			id, type, batch_id, order_id, total_units, created_by, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW()
		)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		transaction.Type, transaction.BatchID, transaction.OrderID,
		transaction.TotalUnits, transaction.CreatedBy,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return inventory.StockTransaction{}, err
	}

	return transaction, nil
}

func (r *stockTransactionRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.StockTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + stockTransactionColumns + ` FROM stock_transactions WHERE id = $1`

	t, err := scanStockTransaction(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.StockTransaction{}, inventory.ErrTransactionNotFound
	}
	return t, err
}

func (r *stockTransactionRepositoryImpl) List(ctx context.Context) ([]inventory.StockTransaction, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *stockTransactionRepositoryImpl) ListByCreator(ctx context.Context, createdBy string) ([]inventory.StockTransaction, error) {
	return r.listWhere(ctx, `created_by = $1`, createdBy)
}

func (r *stockTransactionRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]inventory.StockTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + stockTransactionColumns + `
		FROM stock_transactions
		WHERE ` + where + `
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []inventory.StockTransaction
	for rows.Next() {
		t, err := scanStockTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
