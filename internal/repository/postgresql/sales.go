package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/sales"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type customerRepositoryImpl struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) sales.CustomerRepository {
	return &customerRepositoryImpl{db: db}
}

func scanCustomer(row pgx.Row) (sales.Customer, error) {
	var c sales.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *customerRepositoryImpl) Create(ctx context.Context, customer sales.Customer) (sales.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (id, name, email, phone, address, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, customer.Name, customer.Email, customer.Phone, customer.Address).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return sales.Customer{}, err
	}

	return customer, nil
}

func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (sales.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, email, phone, address, created_at, updated_at FROM customers WHERE id = $1`

	c, err := scanCustomer(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return sales.Customer{}, sales.ErrCustomerNotFound
	}
	return c, err
}

func (r *customerRepositoryImpl) List(ctx context.Context) ([]sales.Customer, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, email, phone, address, created_at, updated_at FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []sales.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepositoryImpl) Update(ctx context.Context, req sales.UpdateCustomerRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}

	query := `UPDATE customers SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return sales.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return sales.ErrCustomerNotFound
	}
	return nil
}

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) sales.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

const orderColumns = `
	o.id, o.customer_id, o.order_date, o.status, o.total_amount, o.notes,
	o.created_by, o.created_at, o.updated_at, c.name
`

func scanOrder(row pgx.Row) (sales.Order, error) {
	var o sales.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.OrderDate,
		&o.Status,
		&o.TotalAmount,
		&o.Notes,
		&o.CreatedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.CustomerName,
	)
	return o, err
}

func (r *orderRepositoryImpl) Create(ctx context.Context, order sales.Order) (sales.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (
			id, customer_id, order_date, status, total_amount, notes, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		order.CustomerID, order.OrderDate, order.Status, order.TotalAmount, order.Notes, order.CreatedBy,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return sales.Order{}, err
	}

	return order, nil
}

func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (sales.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1
	`

	o, err := scanOrder(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return sales.Order{}, sales.ErrOrderNotFound
	}
	return o, err
}

func (r *orderRepositoryImpl) List(ctx context.Context) ([]sales.Order, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *orderRepositoryImpl) ListByCustomerID(ctx context.Context, customerID string) ([]sales.Order, error) {
	return r.listWhere(ctx, `o.customer_id = $1`, customerID)
}

func (r *orderRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]sales.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE ` + where + `
		ORDER BY o.order_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []sales.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepositoryImpl) Update(ctx context.Context, req sales.UpdateOrderRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.OrderDate != nil {
		add("order_date", *req.OrderDate)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.TotalAmount != nil {
		add("total_amount", *req.TotalAmount)
	}
	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	query := `UPDATE orders SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return sales.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return sales.ErrOrderNotFound
	}
	return nil
}
