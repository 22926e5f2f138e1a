package inventory

import "context"

// ProductRepository - interface for the products table
type ProductRepository interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, req UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
	// AdjustStock bumps stock_quantity by delta in one statement.
	AdjustStock(ctx context.Context, id string, delta int) error
}

// ComponentRepository - interface for the components table
type ComponentRepository interface {
	Create(ctx context.Context, component Component) (Component, error)
	GetByID(ctx context.Context, id string) (Component, error)
	List(ctx context.Context) ([]Component, error)
	Update(ctx context.Context, req UpdateComponentRequest) error
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) error
}

// SupplierRepository - interface for the suppliers table
type SupplierRepository interface {
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	GetByID(ctx context.Context, id string) (Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, req UpdateSupplierRequest) error
	Delete(ctx context.Context, id string) error
}

// ImportBatchRepository - interface for the import_batches table
type ImportBatchRepository interface {
	Create(ctx context.Context, batch ImportBatch) (ImportBatch, error)
	GetByID(ctx context.Context, id string) (ImportBatch, error)
	List(ctx context.Context) ([]ImportBatch, error)
	Update(ctx context.Context, req UpdateImportBatchRequest) error
	Delete(ctx context.Context, id string) error
}

// BoxRepository - interface for the boxes table
type BoxRepository interface {
	Create(ctx context.Context, box Box) (Box, error)
	GetByID(ctx context.Context, id string) (Box, error)
	GetByBarcode(ctx context.Context, barcode string) (Box, error)
	ListByBatchID(ctx context.Context, batchID string) ([]Box, error)
	// DecrementQuantity takes qty units off an in-stock box in a single
	// conditional update, flipping status to sold at zero. Returns the
	// updated row or ErrBoxNotInStock / ErrInsufficientBoxQuantity when the
	// guard misses.
	DecrementQuantity(ctx context.Context, id string, qty int) (Box, error)
	SetStatus(ctx context.Context, id string, status BoxStatus) error
	Overview(ctx context.Context) ([]StockOverview, error)
	OverviewByLocation(ctx context.Context, location string) ([]StockOverview, error)
}

// StockTransactionRepository - interface for the stock_transactions table
type StockTransactionRepository interface {
	Create(ctx context.Context, transaction StockTransaction) (StockTransaction, error)
	GetByID(ctx context.Context, id string) (StockTransaction, error)
	List(ctx context.Context) ([]StockTransaction, error)
	ListByCreator(ctx context.Context, createdBy string) ([]StockTransaction, error)
}
