package inventory

import "errors"

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrComponentNotFound       = errors.New("component not found")
	ErrSupplierNotFound        = errors.New("supplier not found")
	ErrBatchNotFound           = errors.New("import batch not found")
	ErrBoxNotFound             = errors.New("box not found")
	ErrTransactionNotFound     = errors.New("stock transaction not found")
	ErrSKUExists               = errors.New("sku already exists")
	ErrBatchNumberExists       = errors.New("batch number already exists")
	ErrBarcodeExists           = errors.New("barcode already exists")
	ErrBoxNotInStock           = errors.New("box is not in stock")
	ErrInsufficientBoxQuantity = errors.New("requested quantity exceeds box quantity")
	ErrBoxCountMismatch        = errors.New("created box count does not match requested count")
	ErrBoxSold                 = errors.New("sold boxes cannot change status")
)
