package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// PaymentRepository defines the interface for payment persistence.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) (int64, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	GetPayments(ctx context.Context) ([]models.Payment, error)
	GetPaymentsByMembership(ctx context.Context, membershipID int64) ([]models.Payment, error)
	DeletePayment(ctx context.Context, executor SQLExecutor, id int64) error
}

func paymentTable() Table[models.Payment] {
	return Table[models.Payment]{
		Name:    "payments",
		Columns: []string{"membership_id", "amount", "paid_at"},
		ToRow: func(p *models.Payment) []any {
			return []any{p.MembershipID, p.Amount, p.PaidAt.UTC()}
		},
		FromRow: func(row Scanner) (models.Payment, error) {
			var p models.Payment
			err := row.Scan(&p.ID, &p.MembershipID, &p.Amount, &p.PaidAt)
			p.PaidAt = p.PaidAt.UTC()
			return p, err
		},
	}
}

type paymentRepository struct {
	payments *GenericRepository[models.Payment]
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db SQLExecutor) PaymentRepository {
	return &paymentRepository{payments: NewGenericRepository(db, paymentTable())}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, executor SQLExecutor, payment *models.Payment) (int64, error) {
	id, err := r.payments.Insert(ctx, executor, payment)
	if err != nil {
		return 0, err
	}
	payment.ID = id
	return id, nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment, found, err := r.payments.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &payment, nil
}

func (r *paymentRepository) GetPayments(ctx context.Context) ([]models.Payment, error) {
	return r.payments.FetchAll(ctx)
}

func (r *paymentRepository) GetPaymentsByMembership(ctx context.Context, membershipID int64) ([]models.Payment, error) {
	return r.payments.findWhere(ctx, "membership_id = ?", "paid_at ASC, id ASC", membershipID)
}

func (r *paymentRepository) DeletePayment(ctx context.Context, executor SQLExecutor, id int64) error {
	deleted, err := r.payments.DeleteByID(ctx, executor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
