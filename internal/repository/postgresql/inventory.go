package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

// itemRepositoryImpl backs both products and components; the two tables
// share a schema and only the table name differs.
type itemRepositoryImpl struct {
	db       *database.DB
	table    string
	notFound error
}

func NewProductRepository(db *database.DB) inventory.ProductRepository {
	return &productRepositoryImpl{itemRepositoryImpl{db: db, table: "products", notFound: inventory.ErrProductNotFound}}
}

func NewComponentRepository(db *database.DB) inventory.ComponentRepository {
	return &componentRepositoryImpl{itemRepositoryImpl{db: db, table: "components", notFound: inventory.ErrComponentNotFound}}
}

type productRepositoryImpl struct {
	itemRepositoryImpl
}

type componentRepositoryImpl struct {
	itemRepositoryImpl
}

const itemColumns = `
	id, sku, name, description, unit_price, stock_quantity, created_at, updated_at
`

func (r *itemRepositoryImpl) create(ctx context.Context, sku, name string, description *string, unitPrice any) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ` + r.table + ` (
			id, sku, name, description, unit_price, stock_quantity, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, 0, NOW(), NOW()
		)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, sku, name, description, unitPrice).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", inventory.ErrSKUExists
		}
		return "", err
	}
	return id, nil
}

func (r *productRepositoryImpl) Create(ctx context.Context, product inventory.Product) (inventory.Product, error) {
	id, err := r.create(ctx, product.SKU, product.Name, product.Description, product.UnitPrice)
	if err != nil {
		return inventory.Product{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *componentRepositoryImpl) Create(ctx context.Context, component inventory.Component) (inventory.Component, error) {
	id, err := r.create(ctx, component.SKU, component.Name, component.Description, component.UnitPrice)
	if err != nil {
		return inventory.Component{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Product, error) {
	q := GetQuerier(ctx, r.db)

	var p inventory.Product
	err := q.QueryRow(ctx, `SELECT `+itemColumns+` FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.UnitPrice, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.Product{}, inventory.ErrProductNotFound
	}
	return p, err
}

func (r *componentRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Component, error) {
	q := GetQuerier(ctx, r.db)

	var c inventory.Component
	err := q.QueryRow(ctx, `SELECT `+itemColumns+` FROM components WHERE id = $1`, id).Scan(
		&c.ID, &c.SKU, &c.Name, &c.Description, &c.UnitPrice, &c.StockQuantity, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.Component{}, inventory.ErrComponentNotFound
	}
	return c, err
}

func (r *productRepositoryImpl) List(ctx context.Context) ([]inventory.Product, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []inventory.Product
	for rows.Next() {
		var p inventory.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.UnitPrice, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *componentRepositoryImpl) List(ctx context.Context) ([]inventory.Component, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+itemColumns+` FROM components ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []inventory.Component
	for rows.Next() {
		var c inventory.Component
		if err := rows.Scan(&c.ID, &c.SKU, &c.Name, &c.Description, &c.UnitPrice, &c.StockQuantity, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

func (r *itemRepositoryImpl) update(ctx context.Context, req inventory.UpdateProductRequest) error {
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
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.UnitPrice != nil {
		add("unit_price", *req.UnitPrice)
	}

	query := `UPDATE ` + r.table + ` SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return r.notFound
	}
	return nil
}

func (r *productRepositoryImpl) Update(ctx context.Context, req inventory.UpdateProductRequest) error {
	return r.update(ctx, req)
}

func (r *componentRepositoryImpl) Update(ctx context.Context, req inventory.UpdateComponentRequest) error {
	return r.update(ctx, req)
}

func (r *itemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return r.notFound
	}
	return nil
}

// AdjustStock moves the aggregate counter by delta in one statement, so
// concurrent stock-ins and sales never read-modify-write.
func (r *itemRepositoryImpl) AdjustStock(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE ` + r.table + ` SET stock_quantity = stock_quantity + $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return r.notFound
	}
	return nil
}

type supplierRepositoryImpl struct {
	db *database.DB
}

func NewSupplierRepository(db *database.DB) inventory.SupplierRepository {
	return &supplierRepositoryImpl{db: db}
}

func scanSupplier(row pgx.Row) (inventory.Supplier, error) {
	var s inventory.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *supplierRepositoryImpl) Create(ctx context.Context, supplier inventory.Supplier) (inventory.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suppliers (id, name, contact_name, phone, email, address, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, supplier.Name, supplier.ContactName, supplier.Phone, supplier.Email, supplier.Address).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return inventory.Supplier{}, err
	}

	return supplier, nil
}

func (r *supplierRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, contact_name, phone, email, address, created_at, updated_at FROM suppliers WHERE id = $1`

	s, err := scanSupplier(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.Supplier{}, inventory.ErrSupplierNotFound
	}
	return s, err
}

func (r *supplierRepositoryImpl) List(ctx context.Context) ([]inventory.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, contact_name, phone, email, address, created_at, updated_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []inventory.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepositoryImpl) Update(ctx context.Context, req inventory.UpdateSupplierRequest) error {
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
	if req.ContactName != nil {
		add("contact_name", *req.ContactName)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}

	query := `UPDATE suppliers SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return inventory.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return inventory.ErrSupplierNotFound
	}
	return nil
}

type importBatchRepositoryImpl struct {
	db *database.DB
}

func NewImportBatchRepository(db *database.DB) inventory.ImportBatchRepository {
	return &importBatchRepositoryImpl{db: db}
}

const importBatchColumns = `
	b.id, b.batch_number, b.supplier_id, b.import_date, b.notes,
	b.created_at, b.updated_at, s.name
`

func scanImportBatch(row pgx.Row) (inventory.ImportBatch, error) {
	var b inventory.ImportBatch
	err := row.Scan(
		&b.ID,
		&b.BatchNumber,
		&b.SupplierID,
		&b.ImportDate,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.SupplierName,
	)
	return b, err
}

func (r *importBatchRepositoryImpl) Create(ctx context.Context, batch inventory.ImportBatch) (inventory.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO import_batches (id, batch_number, supplier_id, import_date, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, batch.BatchNumber, batch.SupplierID, batch.ImportDate, batch.Notes).
		Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return inventory.ImportBatch{}, inventory.ErrBatchNumberExists
		}
		return inventory.ImportBatch{}, err
	}

	return batch, nil
}

func (r *importBatchRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + importBatchColumns + `
		FROM import_batches b
		INNER JOIN suppliers s ON b.supplier_id = s.id
		WHERE b.id = $1
	`

	b, err := scanImportBatch(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.ImportBatch{}, inventory.ErrBatchNotFound
	}
	return b, err
}

func (r *importBatchRepositoryImpl) List(ctx context.Context) ([]inventory.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + importBatchColumns + `
		FROM import_batches b
		INNER JOIN suppliers s ON b.supplier_id = s.id
		ORDER BY b.import_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []inventory.ImportBatch
	for rows.Next() {
		b, err := scanImportBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *importBatchRepositoryImpl) Update(ctx context.Context, req inventory.UpdateImportBatchRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.SupplierID != nil {
		add("supplier_id", *req.SupplierID)
	}
	if req.ImportDate != nil {
		add("import_date", *req.ImportDate)
	}
	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	query := `UPDATE import_batches SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return inventory.ErrBatchNotFound
	}
	return nil
}

func (r *importBatchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM import_batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return inventory.ErrBatchNotFound
	}
	return nil
}
