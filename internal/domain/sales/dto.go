package sales

import (
	"github.com/shopspring/decimal"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
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

type UpdateCustomerRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
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

type CreateOrderRequest struct {
	CustomerID  string          `json:"customer_id"`
	OrderDate   string          `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedBy   string          `json:"-"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.OrderDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "order_date", Message: "must be YYYY-MM-DD"})
	}
	if r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderRequest struct {
	ID          string           `json:"-"`
	OrderDate   *string          `json:"order_date,omitempty"`
	Status      *string          `json:"status,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r *UpdateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OrderDate != nil {
		if _, ok := validator.IsValidDate(*r.OrderDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "order_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !OrderStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, paid, shipped, cancelled"})
	}
	if r.TotalAmount != nil && r.TotalAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func ToCustomerResponse(c Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

type OrderResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName *string         `json:"customer_name,omitempty"`
	OrderDate    string          `json:"order_date"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedBy    string          `json:"created_by"`
}

func ToOrderResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate.Format("2006-01-02"),
		Status:       string(o.Status),
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		CreatedBy:    o.CreatedBy,
	}
}

func ToOrderResponses(orders []Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(o))
	}
	return responses
}
