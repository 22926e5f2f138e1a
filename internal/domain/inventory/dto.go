package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SKU) {
		errs = append(errs, validator.ValidationError{Field: "sku", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Components share the product payload shape.
type CreateComponentRequest = CreateProductRequest
type UpdateComponentRequest = UpdateProductRequest

type CreateSupplierRequest struct {
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (r *CreateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSupplierRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (r *UpdateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateImportBatchRequest struct {
	BatchNumber string  `json:"batch_number"`
	SupplierID  string  `json:"supplier_id"`
	ImportDate  string  `json:"import_date"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateImportBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchNumber) {
		errs = append(errs, validator.ValidationError{Field: "batch_number", Message: "is required"})
	}
	if !validator.IsValidUUID(r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.ImportDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "import_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateImportBatchRequest struct {
	ID         string  `json:"-"`
	SupplierID *string `json:"supplier_id,omitempty"`
	ImportDate *string `json:"import_date,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateImportBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SupplierID != nil && !validator.IsValidUUID(*r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "must be a valid UUID"})
	}
	if r.ImportDate != nil {
		if _, ok := validator.IsValidDate(*r.ImportDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "import_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddStockRequest struct {
	BatchID       string `json:"batch_id"`
	ContentsType  string `json:"contents_type"`
	ContentsID    string `json:"contents_id"`
	QuantityInBox int    `json:"quantity_in_box"`
	BoxesCount    int    `json:"boxes_count"`
	Location      string `json:"location"`
	CreatedBy     string `json:"-"`
}

func (r *AddStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.BatchID) {
		errs = append(errs, validator.ValidationError{Field: "batch_id", Message: "must be a valid UUID"})
	}
	if !ContentsType(r.ContentsType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "contents_type", Message: "must be product or component"})
	}
	if !validator.IsValidUUID(r.ContentsID) {
		errs = append(errs, validator.ValidationError{Field: "contents_id", Message: "must be a valid UUID"})
	}
	if r.QuantityInBox <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity_in_box", Message: "must be positive"})
	}
	if r.BoxesCount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "boxes_count", Message: "must be positive"})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateBoxStatusRequest moves a box between in_stock, damaged and
// quarantined. Sold is terminal and only ever set by the sell path.
type UpdateBoxStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateBoxStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	status := BoxStatus(r.Status)
	if !status.Valid() || status == BoxSold {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be in_stock, damaged or quarantined"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SellStockItem struct {
	BoxID             string `json:"box_id"`
	RequestedQuantity int    `json:"requested_quantity"`
	OrderID           string `json:"order_id"`
}

type SellStockRequest struct {
	Items     []SellStockItem `json:"items"`
	CreatedBy string          `json:"-"`
}

func (r *SellStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "must not be empty"})
	}
	for i, item := range r.Items {
		prefix := "items[" + validator.Itoa(i) + "]."
		if !validator.IsValidUUID(item.BoxID) {
			errs = append(errs, validator.ValidationError{Field: prefix + "box_id", Message: "must be a valid UUID"})
		}
		if item.RequestedQuantity <= 0 {
			errs = append(errs, validator.ValidationError{Field: prefix + "requested_quantity", Message: "must be positive"})
		}
		if item.OrderID != "" && !validator.IsValidUUID(item.OrderID) {
			errs = append(errs, validator.ValidationError{Field: prefix + "order_id", Message: "must be a valid UUID"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
}

func ToProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
	}
}

func ToComponentResponse(c Component) ProductResponse {
	return ProductResponse{
		ID:            c.ID,
		SKU:           c.SKU,
		Name:          c.Name,
		Description:   c.Description,
		UnitPrice:     c.UnitPrice,
		StockQuantity: c.StockQuantity,
	}
}

type SupplierResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func ToSupplierResponse(s Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, ContactName: s.ContactName, Phone: s.Phone, Email: s.Email, Address: s.Address}
}

type ImportBatchResponse struct {
	ID           string  `json:"id"`
	BatchNumber  string  `json:"batch_number"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName *string `json:"supplier_name,omitempty"`
	ImportDate   string  `json:"import_date"`
	Notes        *string `json:"notes,omitempty"`
}

func ToImportBatchResponse(b ImportBatch) ImportBatchResponse {
	return ImportBatchResponse{
		ID:           b.ID,
		BatchNumber:  b.BatchNumber,
		SupplierID:   b.SupplierID,
		SupplierName: b.SupplierName,
		ImportDate:   b.ImportDate.Format("2006-01-02"),
		Notes:        b.Notes,
	}
}

type BoxResponse struct {
	ID            string `json:"id"`
	ContentsType  string `json:"contents_type"`
	ContentsID    string `json:"contents_id"`
	BatchID       string `json:"batch_id"`
	QuantityInBox int    `json:"quantity_in_box"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	Barcode       string `json:"barcode"`
}

func ToBoxResponse(b Box) BoxResponse {
	return BoxResponse{
		ID:            b.ID,
		ContentsType:  string(b.ContentsType),
		ContentsID:    b.ContentsID,
		BatchID:       b.BatchID,
		QuantityInBox: b.QuantityInBox,
		Status:        string(b.Status),
		Location:      b.Location,
		Barcode:       b.Barcode,
	}
}

func ToBoxResponses(boxes []Box) []BoxResponse {
	responses := make([]BoxResponse, 0, len(boxes))
	for _, b := range boxes {
		responses = append(responses, ToBoxResponse(b))
	}
	return responses
}

type TransactionResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	BatchID    *string `json:"batch_id,omitempty"`
	OrderID    *string `json:"order_id,omitempty"`
	TotalUnits int     `json:"total_units"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  string  `json:"created_at"`
}

func ToTransactionResponse(t StockTransaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		Type:       string(t.Type),
		BatchID:    t.BatchID,
		OrderID:    t.OrderID,
		TotalUnits: t.TotalUnits,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToTransactionResponses(transactions []StockTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, ToTransactionResponse(t))
	}
	return responses
}

// AddStockResponse carries the created boxes plus a base64 PDF of their
// barcode labels, ready to print.
type AddStockResponse struct {
	Boxes       []BoxResponse       `json:"boxes"`
	Barcodes    []string            `json:"barcodes"`
	Transaction TransactionResponse `json:"transaction"`
	LabelsPDF   string              `json:"labels_pdf_base64,omitempty"`
}

type SoldBox struct {
	BoxID             string `json:"box_id"`
	QuantitySold      int    `json:"quantity_sold"`
	RemainingQuantity int    `json:"remaining_quantity"`
	Status            string `json:"status"`
}

type SellStockResponse struct {
	SoldBoxes      []SoldBox           `json:"sold_boxes"`
	TotalUnitsSold int                 `json:"total_units_sold"`
	Transaction    TransactionResponse `json:"transaction"`
}

// StockOverview aggregates box-level inventory per item and location.
type StockOverview struct {
	ContentsType  string `json:"contents_type"`
	ContentsID    string `json:"contents_id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	BoxCount      int    `json:"box_count"`
	TotalQuantity int    `json:"total_quantity"`
}
