package sales

import "context"

// CustomerRepository - interface for the customers table
type CustomerRepository interface {
	Create(ctx context.Context, customer Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, req UpdateCustomerRequest) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository - interface for the orders table
type OrderRepository interface {
	Create(ctx context.Context, order Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Order, error)
	Update(ctx context.Context, req UpdateOrderRequest) error
	Delete(ctx context.Context, id string) error
}
