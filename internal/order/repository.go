package order

import "context"

// Repository archives completed orders.
// Service depends ONLY on this interface.
type Repository interface {
	SaveSubmitted(ctx context.Context, order *SubmittedOrder) error
	ListByCustomer(ctx context.Context, customerID string) ([]SubmittedOrder, error)
}
