package repository

import (
	"context"

	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// OrderRepository is a read-only view of course purchases.
type OrderRepository struct {
	res *upstream.Resource[models.Order]
}

// NewOrderRepository binds /orders.
func NewOrderRepository(client *upstream.Client) *OrderRepository {
	return &OrderRepository{res: upstream.NewResource[models.Order](client, "/orders")}
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	return r.res.List(ctx)
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	return r.res.Get(ctx, id)
}

// PaymentRepository is a read-only view of gateway payments.
type PaymentRepository struct {
	res *upstream.Resource[models.Payment]
}

// NewPaymentRepository binds /payments.
func NewPaymentRepository(client *upstream.Client) *PaymentRepository {
	return &PaymentRepository{res: upstream.NewResource[models.Payment](client, "/payments")}
}

func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	return r.res.List(ctx)
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (*models.Payment, error) {
	return r.res.Get(ctx, id)
}
