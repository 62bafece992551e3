package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"
)

// --- Payment DTOs ---
type CreatePaymentRequest struct {
	MembershipID int64   `json:"membership_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	PaidAt       *string `json:"paid_at"` // RFC3339, defaults to now
}

// --- PaymentService Interface ---
type PaymentService interface {
	// RecordMembershipPayment records the charge for a membership creation
	// event on the caller's executor, so it can share the caller's transaction.
	RecordMembershipPayment(ctx context.Context, executor repositories.SQLExecutor, membershipID int64, amount float64) (*models.Payment, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (*models.Payment, error)
	GetPayments(ctx context.Context) ([]models.Payment, error)
	GetPaymentsByMembership(ctx context.Context, membershipID int64) ([]models.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

// --- paymentService Implementation ---
type paymentService struct {
	paymentRepo    repositories.PaymentRepository
	membershipRepo repositories.MembershipRepository
	now            func() time.Time
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(pr repositories.PaymentRepository, mr repositories.MembershipRepository, now func() time.Time) PaymentService {
	if now == nil {
		now = time.Now
	}
	return &paymentService{
		paymentRepo:    pr,
		membershipRepo: mr,
		now:            now,
	}
}

func (s *paymentService) RecordMembershipPayment(ctx context.Context, executor repositories.SQLExecutor, membershipID int64, amount float64) (*models.Payment, error) {
	if membershipID <= 0 {
		return nil, validationError("membership id must be positive")
	}
	if amount < 0 {
		return nil, validationError("payment amount cannot be negative")
	}

	payment := &models.Payment{MembershipID: membershipID, Amount: amount, PaidAt: s.now().UTC()}
	if _, err := s.paymentRepo.CreatePayment(ctx, executor, payment); err != nil {
		return nil, persistenceError("recording membership payment", err)
	}
	return payment, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	if req.MembershipID <= 0 {
		return nil, validationError("membership id must be positive")
	}
	if req.Amount <= 0 {
		return nil, validationError("payment amount must be positive")
	}

	paidAt := s.now().UTC()
	if req.PaidAt != nil && strings.TrimSpace(*req.PaidAt) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.PaidAt))
		if err != nil {
			return nil, validationError("paid_at must be an RFC3339 timestamp")
		}
		paidAt = parsed.UTC()
	}

	exists, err := s.membershipRepo.MembershipExists(ctx, req.MembershipID)
	if err != nil {
		return nil, persistenceError("checking membership", err)
	}
	if !exists {
		return nil, ErrMembershipNotFound
	}

	payment := &models.Payment{MembershipID: req.MembershipID, Amount: req.Amount, PaidAt: paidAt}
	if _, err := s.paymentRepo.CreatePayment(ctx, nil, payment); err != nil {
		return nil, persistenceError("creating payment", err)
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, persistenceError("getting payment", err)
	}
	return payment, nil
}

func (s *paymentService) GetPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetPayments(ctx)
	if err != nil {
		return nil, persistenceError("listing payments", err)
	}
	return payments, nil
}

func (s *paymentService) GetPaymentsByMembership(ctx context.Context, membershipID int64) ([]models.Payment, error) {
	exists, err := s.membershipRepo.MembershipExists(ctx, membershipID)
	if err != nil {
		return nil, persistenceError("checking membership", err)
	}
	if !exists {
		return nil, ErrMembershipNotFound
	}

	payments, err := s.paymentRepo.GetPaymentsByMembership(ctx, membershipID)
	if err != nil {
		return nil, persistenceError(fmt.Sprintf("listing payments of membership %d", membershipID), err)
	}
	return payments, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	if err := s.paymentRepo.DeletePayment(ctx, nil, paymentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return persistenceError("deleting payment", err)
	}
	return nil
}
