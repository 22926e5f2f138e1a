package inventory

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/inventory"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
	"github.com/madison-jay/edike-backend/internal/pkg/pdf"
	"github.com/madison-jay/edike-backend/internal/repository/postgresql"
)

// maxBarcodeAttempts bounds the retry loop on barcode uniqueness conflicts.
// The 6-char random suffix makes more than one retry vanishingly rare.
const maxBarcodeAttempts = 5

type Service struct {
	db              *database.DB
	productRepo     inventory.ProductRepository
	componentRepo   inventory.ComponentRepository
	supplierRepo    inventory.SupplierRepository
	batchRepo       inventory.ImportBatchRepository
	boxRepo         inventory.BoxRepository
	transactionRepo inventory.StockTransactionRepository
	labelGenerator  *pdf.Generator
}

func NewService(
	db *database.DB,
	productRepo inventory.ProductRepository,
	componentRepo inventory.ComponentRepository,
	supplierRepo inventory.SupplierRepository,
	batchRepo inventory.ImportBatchRepository,
	boxRepo inventory.BoxRepository,
	transactionRepo inventory.StockTransactionRepository,
	labelGenerator *pdf.Generator,
) *Service {
	return &Service{
		db:              db,
		productRepo:     productRepo,
		componentRepo:   componentRepo,
		supplierRepo:    supplierRepo,
		batchRepo:       batchRepo,
		boxRepo:         boxRepo,
		transactionRepo: transactionRepo,
		labelGenerator:  labelGenerator,
	}
}

func (s *Service) CreateProduct(ctx context.Context, req inventory.CreateProductRequest) (inventory.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ProductResponse{}, err
	}

	created, err := s.productRepo.Create(ctx, inventory.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return inventory.ProductResponse{}, err
	}
	return inventory.ToProductResponse(created), nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (inventory.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.ProductResponse{}, err
	}
	return inventory.ToProductResponse(product), nil
}

func (s *Service) ListProducts(ctx context.Context) ([]inventory.ProductResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	responses := make([]inventory.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, inventory.ToProductResponse(p))
	}
	return responses, nil
}

func (s *Service) UpdateProduct(ctx context.Context, req inventory.UpdateProductRequest) (inventory.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ProductResponse{}, err
	}
	if err := s.productRepo.Update(ctx, req); err != nil {
		return inventory.ProductResponse{}, err
	}
	return s.GetProduct(ctx, req.ID)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *Service) CreateComponent(ctx context.Context, req inventory.CreateComponentRequest) (inventory.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ProductResponse{}, err
	}

	created, err := s.componentRepo.Create(ctx, inventory.Component{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return inventory.ProductResponse{}, err
	}
	return inventory.ToComponentResponse(created), nil
}

func (s *Service) GetComponent(ctx context.Context, id string) (inventory.ProductResponse, error) {
	component, err := s.componentRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.ProductResponse{}, err
	}
	return inventory.ToComponentResponse(component), nil
}

func (s *Service) ListComponents(ctx context.Context) ([]inventory.ProductResponse, error) {
	components, err := s.componentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}

	responses := make([]inventory.ProductResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, inventory.ToComponentResponse(c))
	}
	return responses, nil
}

func (s *Service) UpdateComponent(ctx context.Context, req inventory.UpdateComponentRequest) (inventory.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ProductResponse{}, err
	}
	if err := s.componentRepo.Update(ctx, req); err != nil {
		return inventory.ProductResponse{}, err
	}
	return s.GetComponent(ctx, req.ID)
}

func (s *Service) DeleteComponent(ctx context.Context, id string) error {
	return s.componentRepo.Delete(ctx, id)
}

func (s *Service) CreateSupplier(ctx context.Context, req inventory.CreateSupplierRequest) (inventory.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.SupplierResponse{}, err
	}

	created, err := s.supplierRepo.Create(ctx, inventory.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		return inventory.SupplierResponse{}, fmt.Errorf("create supplier: %w", err)
	}
	return inventory.ToSupplierResponse(created), nil
}

func (s *Service) GetSupplier(ctx context.Context, id string) (inventory.SupplierResponse, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.SupplierResponse{}, err
	}
	return inventory.ToSupplierResponse(supplier), nil
}

func (s *Service) ListSuppliers(ctx context.Context) ([]inventory.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	responses := make([]inventory.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		responses = append(responses, inventory.ToSupplierResponse(sup))
	}
	return responses, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, req inventory.UpdateSupplierRequest) (inventory.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.SupplierResponse{}, err
	}
	if err := s.supplierRepo.Update(ctx, req); err != nil {
		return inventory.SupplierResponse{}, err
	}
	return s.GetSupplier(ctx, req.ID)
}

func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *Service) CreateImportBatch(ctx context.Context, req inventory.CreateImportBatchRequest) (inventory.ImportBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ImportBatchResponse{}, err
	}

	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID); err != nil {
		return inventory.ImportBatchResponse{}, err
	}

	importDate, _ := time.Parse("2006-01-02", req.ImportDate)

	created, err := s.batchRepo.Create(ctx, inventory.ImportBatch{
		BatchNumber: req.BatchNumber,
		SupplierID:  req.SupplierID,
		ImportDate:  importDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return inventory.ImportBatchResponse{}, err
	}

	created, err = s.batchRepo.GetByID(ctx, created.ID)
	if err != nil {
		return inventory.ImportBatchResponse{}, err
	}
	return inventory.ToImportBatchResponse(created), nil
}

func (s *Service) GetImportBatch(ctx context.Context, id string) (inventory.ImportBatchResponse, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.ImportBatchResponse{}, err
	}
	return inventory.ToImportBatchResponse(batch), nil
}

func (s *Service) ListImportBatches(ctx context.Context) ([]inventory.ImportBatchResponse, error) {
	batches, err := s.batchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list import batches: %w", err)
	}

	responses := make([]inventory.ImportBatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, inventory.ToImportBatchResponse(b))
	}
	return responses, nil
}

func (s *Service) UpdateImportBatch(ctx context.Context, req inventory.UpdateImportBatchRequest) (inventory.ImportBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ImportBatchResponse{}, err
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.GetByID(ctx, *req.SupplierID); err != nil {
			return inventory.ImportBatchResponse{}, err
		}
	}
	if err := s.batchRepo.Update(ctx, req); err != nil {
		return inventory.ImportBatchResponse{}, err
	}
	return s.GetImportBatch(ctx, req.ID)
}

func (s *Service) DeleteImportBatch(ctx context.Context, id string) error {
	return s.batchRepo.Delete(ctx, id)
}

// AddNewStock creates the boxes, bumps the item's aggregate stock and writes
// one inbound ledger row, all in a single transaction. Barcode uniqueness
// conflicts retry with a fresh suffix. The label PDF is rendered after the
// commit; a render failure does not undo the stock movement.
func (s *Service) AddNewStock(ctx context.Context, req inventory.AddStockRequest) (inventory.AddStockResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.AddStockResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return inventory.AddStockResponse{}, err
	}

	sku, itemName, err := s.itemIdentity(ctx, inventory.ContentsType(req.ContentsType), req.ContentsID)
	if err != nil {
		return inventory.AddStockResponse{}, err
	}

	batch, err := s.batchRepo.GetByID(ctx, req.BatchID)
	if err != nil {
		return inventory.AddStockResponse{}, err
	}

	totalUnits := req.QuantityInBox * req.BoxesCount

	var (
		boxes       []inventory.Box
		transaction inventory.StockTransaction
	)
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for i := 0; i < req.BoxesCount; i++ {
			box, err := s.createBoxWithRetry(txCtx, inventory.Box{
				ContentsType:  inventory.ContentsType(req.ContentsType),
				ContentsID:    req.ContentsID,
				BatchID:       req.BatchID,
				QuantityInBox: req.QuantityInBox,
				Status:        inventory.BoxInStock,
				Location:      req.Location,
			}, sku, batch.BatchNumber)
			if err != nil {
				return err
			}
			boxes = append(boxes, box)
		}
		if len(boxes) != req.BoxesCount {
			return inventory.ErrBoxCountMismatch
		}

		if err := s.adjustItemStock(txCtx, inventory.ContentsType(req.ContentsType), req.ContentsID, totalUnits); err != nil {
			return err
		}

		var err error
		transaction, err = s.transactionRepo.Create(txCtx, inventory.StockTransaction{
			Type:       inventory.TransactionInbound,
			BatchID:    &req.BatchID,
			TotalUnits: totalUnits,
			CreatedBy:  identity.EmployeeID,
		})
		return err
	})
	if err != nil {
		return inventory.AddStockResponse{}, err
	}

	response := inventory.AddStockResponse{
		Boxes:       inventory.ToBoxResponses(boxes),
		Transaction: inventory.ToTransactionResponse(transaction),
	}

	labels := make([]pdf.Label, 0, len(boxes))
	for _, box := range boxes {
		response.Barcodes = append(response.Barcodes, box.Barcode)
		labels = append(labels, pdf.Label{
			Barcode:     box.Barcode,
			ItemName:    itemName,
			BatchNumber: batch.BatchNumber,
			Quantity:    box.QuantityInBox,
			Location:    box.Location,
		})
	}

	labelBytes, err := s.labelGenerator.RenderLabels(labels)
	if err != nil {
		slog.Error("label pdf render failed, stock movement already committed", "batch_id", req.BatchID, "error", err)
	} else {
		response.LabelsPDF = base64.StdEncoding.EncodeToString(labelBytes)
	}
	return response, nil
}

func (s *Service) createBoxWithRetry(ctx context.Context, box inventory.Box, sku, batchNumber string) (inventory.Box, error) {
	for attempt := 0; attempt < maxBarcodeAttempts; attempt++ {
		barcode, err := inventory.NewBarcode(sku, batchNumber)
		if err != nil {
			return inventory.Box{}, fmt.Errorf("generate barcode: %w", err)
		}
		box.Barcode = barcode

		created, err := s.boxRepo.Create(ctx, box)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, inventory.ErrBarcodeExists) {
			return inventory.Box{}, fmt.Errorf("create box: %w", err)
		}
	}
	return inventory.Box{}, fmt.Errorf("create box: %w after %d attempts", inventory.ErrBarcodeExists, maxBarcodeAttempts)
}

// SellStock decrements each requested box and the item's aggregate stock in
// its own transaction, so concurrent sales of different boxes never block
// each other and a failure partway leaves earlier boxes sold. One outbound
// ledger row covers whatever actually sold.
func (s *Service) SellStock(ctx context.Context, req inventory.SellStockRequest) (inventory.SellStockResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.SellStockResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return inventory.SellStockResponse{}, err
	}

	var (
		soldBoxes   []inventory.SoldBox
		totalSold   int
		orderID     string
		singleOrder = true
	)
	for i, item := range req.Items {
		if i == 0 {
			orderID = item.OrderID
		} else if item.OrderID != orderID {
			singleOrder = false
		}

		it := item
		err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			box, err := s.boxRepo.DecrementQuantity(txCtx, it.BoxID, it.RequestedQuantity)
			if err != nil {
				return err
			}
			if err := s.adjustItemStock(txCtx, box.ContentsType, box.ContentsID, -it.RequestedQuantity); err != nil {
				return err
			}
			soldBoxes = append(soldBoxes, inventory.SoldBox{
				BoxID:             box.ID,
				QuantitySold:      it.RequestedQuantity,
				RemainingQuantity: box.QuantityInBox,
				Status:            string(box.Status),
			})
			return nil
		})
		if err != nil {
			// Earlier boxes stay sold. Write the ledger row for what moved
			// before surfacing the failure.
			if totalSold > 0 {
				s.recordOutbound(ctx, identity.EmployeeID, totalSold, orderIDPtr(singleOrder, orderID))
			}
			return inventory.SellStockResponse{}, fmt.Errorf("sell box %s: %w", it.BoxID, err)
		}
		totalSold += it.RequestedQuantity
	}

	transaction, err := s.transactionRepo.Create(ctx, inventory.StockTransaction{
		Type:       inventory.TransactionOutbound,
		OrderID:    orderIDPtr(singleOrder, orderID),
		TotalUnits: totalSold,
		CreatedBy:  identity.EmployeeID,
	})
	if err != nil {
		return inventory.SellStockResponse{}, fmt.Errorf("record outbound transaction: %w", err)
	}

	return inventory.SellStockResponse{
		SoldBoxes:      soldBoxes,
		TotalUnitsSold: totalSold,
		Transaction:    inventory.ToTransactionResponse(transaction),
	}, nil
}

func (s *Service) recordOutbound(ctx context.Context, createdBy string, units int, orderID *string) {
	if _, err := s.transactionRepo.Create(ctx, inventory.StockTransaction{
		Type:       inventory.TransactionOutbound,
		OrderID:    orderID,
		TotalUnits: units,
		CreatedBy:  createdBy,
	}); err != nil {
		slog.Error("outbound ledger row failed after partial sale", "units", units, "error", err)
	}
}

func orderIDPtr(single bool, orderID string) *string {
	if !single || orderID == "" {
		return nil
	}
	return &orderID
}

func (s *Service) itemIdentity(ctx context.Context, contentsType inventory.ContentsType, contentsID string) (sku, name string, err error) {
	switch contentsType {
	case inventory.ContentsProduct:
		product, err := s.productRepo.GetByID(ctx, contentsID)
		if err != nil {
			return "", "", err
		}
		return product.SKU, product.Name, nil
	default:
		component, err := s.componentRepo.GetByID(ctx, contentsID)
		if err != nil {
			return "", "", err
		}
		return component.SKU, component.Name, nil
	}
}

func (s *Service) adjustItemStock(ctx context.Context, contentsType inventory.ContentsType, contentsID string, delta int) error {
	if contentsType == inventory.ContentsProduct {
		return s.productRepo.AdjustStock(ctx, contentsID, delta)
	}
	return s.componentRepo.AdjustStock(ctx, contentsID, delta)
}

// UpdateBoxStatus moves a box between in_stock, damaged and quarantined.
// Units leaving in_stock come off the item's sellable total; units returning
// go back on. Sold boxes are immutable.
func (s *Service) UpdateBoxStatus(ctx context.Context, req inventory.UpdateBoxStatusRequest) (inventory.BoxResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.BoxResponse{}, err
	}

	box, err := s.boxRepo.GetByID(ctx, req.ID)
	if err != nil {
		return inventory.BoxResponse{}, err
	}
	if box.Status == inventory.BoxSold {
		return inventory.BoxResponse{}, inventory.ErrBoxSold
	}

	newStatus := inventory.BoxStatus(req.Status)
	if newStatus == box.Status {
		return inventory.ToBoxResponse(box), nil
	}

	delta := 0
	if box.Status == inventory.BoxInStock {
		delta = -box.QuantityInBox
	} else if newStatus == inventory.BoxInStock {
		delta = box.QuantityInBox
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.boxRepo.SetStatus(txCtx, box.ID, newStatus); err != nil {
			return err
		}
		if delta != 0 {
			return s.adjustItemStock(txCtx, box.ContentsType, box.ContentsID, delta)
		}
		return nil
	})
	if err != nil {
		return inventory.BoxResponse{}, err
	}

	box.Status = newStatus
	return inventory.ToBoxResponse(box), nil
}

func (s *Service) GetBoxByBarcode(ctx context.Context, barcode string) (inventory.BoxResponse, error) {
	box, err := s.boxRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return inventory.BoxResponse{}, err
	}
	return inventory.ToBoxResponse(box), nil
}

func (s *Service) ListBoxesByBatch(ctx context.Context, batchID string) ([]inventory.BoxResponse, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	boxes, err := s.boxRepo.ListByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	return inventory.ToBoxResponses(boxes), nil
}

func (s *Service) StockOverview(ctx context.Context, location string) ([]inventory.StockOverview, error) {
	var (
		overview []inventory.StockOverview
		err      error
	)
	if location != "" {
		overview, err = s.boxRepo.OverviewByLocation(ctx, location)
	} else {
		overview, err = s.boxRepo.Overview(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("stock overview: %w", err)
	}
	return overview, nil
}

// ListTransactions scopes the `user` role to rows they created.
func (s *Service) ListTransactions(ctx context.Context) ([]inventory.TransactionResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var transactions []inventory.StockTransaction
	if identity.Role == user.RoleUser {
		transactions, err = s.transactionRepo.ListByCreator(ctx, identity.EmployeeID)
	} else {
		transactions, err = s.transactionRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	return inventory.ToTransactionResponses(transactions), nil
}

func (s *Service) GetTransaction(ctx context.Context, id string) (inventory.TransactionResponse, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return inventory.TransactionResponse{}, err
	}
	return inventory.ToTransactionResponse(transaction), nil
}
