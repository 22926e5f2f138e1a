package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/madison-jay/edike-backend/internal/domain/sales"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type Service struct {
	db           *database.DB
	customerRepo sales.CustomerRepository
	orderRepo    sales.OrderRepository
}

func NewService(db *database.DB, customerRepo sales.CustomerRepository, orderRepo sales.OrderRepository) *Service {
	return &Service{db: db, customerRepo: customerRepo, orderRepo: orderRepo}
}

func (s *Service) CreateCustomer(ctx context.Context, req sales.CreateCustomerRequest) (sales.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.CustomerResponse{}, err
	}

	created, err := s.customerRepo.Create(ctx, sales.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return sales.CustomerResponse{}, fmt.Errorf("create customer: %w", err)
	}
	return sales.ToCustomerResponse(created), nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (sales.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return sales.CustomerResponse{}, err
	}
	return sales.ToCustomerResponse(customer), nil
}

func (s *Service) ListCustomers(ctx context.Context) ([]sales.CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	responses := make([]sales.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, sales.ToCustomerResponse(c))
	}
	return responses, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, req sales.UpdateCustomerRequest) (sales.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.CustomerResponse{}, err
	}
	if err := s.customerRepo.Update(ctx, req); err != nil {
		return sales.CustomerResponse{}, err
	}
	return s.GetCustomer(ctx, req.ID)
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, req sales.CreateOrderRequest) (sales.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.OrderResponse{}, err
	}

	identity, err := user.FromContext(ctx)
	if err != nil {
		return sales.OrderResponse{}, err
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return sales.OrderResponse{}, err
	}

	orderDate, _ := time.Parse("2006-01-02", req.OrderDate)

	created, err := s.orderRepo.Create(ctx, sales.Order{
		CustomerID:  req.CustomerID,
		OrderDate:   orderDate,
		Status:      sales.OrderPending,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
		CreatedBy:   identity.EmployeeID,
	})
	if err != nil {
		return sales.OrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	created, err = s.orderRepo.GetByID(ctx, created.ID)
	if err != nil {
		return sales.OrderResponse{}, err
	}
	return sales.ToOrderResponse(created), nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (sales.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return sales.OrderResponse{}, err
	}
	return sales.ToOrderResponse(order), nil
}

func (s *Service) ListOrders(ctx context.Context, customerID string) ([]sales.OrderResponse, error) {
	var (
		orders []sales.Order
		err    error
	)
	if customerID != "" {
		orders, err = s.orderRepo.ListByCustomerID(ctx, customerID)
	} else {
		orders, err = s.orderRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return sales.ToOrderResponses(orders), nil
}

func (s *Service) UpdateOrder(ctx context.Context, req sales.UpdateOrderRequest) (sales.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.OrderResponse{}, err
	}
	if err := s.orderRepo.Update(ctx, req); err != nil {
		return sales.OrderResponse{}, err
	}
	return s.GetOrder(ctx, req.ID)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}
