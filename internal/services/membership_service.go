package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// --- Membership DTOs ---
type CreateMembershipRequest struct {
	ClientID         int64 `json:"client_id" binding:"required"`
	MembershipTypeID int64 `json:"membership_type_id" binding:"required"`
}

type RenewMembershipRequest struct {
	MembershipTypeID *int64 `json:"membership_type_id"` // nil keeps the prior type
}

// --- MembershipService Interface ---
type MembershipService interface {
	CreateMembership(ctx context.Context, clientID, membershipTypeID int64) (int64, error)
	RenewMembership(ctx context.Context, membershipID int64, newTypeID *int64) (int64, error)
	StatusOf(ctx context.Context, membershipID int64) (models.MembershipStatus, error)
	GetMembershipByID(ctx context.Context, membershipID int64) (*models.MembershipWithStatus, error)
	GetClientMemberships(ctx context.Context, clientID int64) ([]models.MembershipWithStatus, error)
	ListMemberships(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error)
	ListActive(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error)
	ListExpiringSoon(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error)
	ListExpired(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error)
	ListByStatus(ctx context.Context, status models.MembershipStatus, clientID *int64) ([]models.MembershipWithStatus, error)
	HasActiveMembership(ctx context.Context, clientID int64) (bool, error)
	DeleteMembership(ctx context.Context, membershipID int64) error
}

// --- membershipService Implementation ---
type membershipService struct {
	membershipRepo     repositories.MembershipRepository
	membershipTypeRepo repositories.MembershipTypeRepository
	clientRepo         repositories.ClientRepository
	paymentService     PaymentService
	db                 *sqlx.DB // For managing transactions
	now                func() time.Time
}

// NewMembershipService creates a new instance of MembershipService.
// now is the clock used for start dates and status; nil means time.Now.
func NewMembershipService(
	mr repositories.MembershipRepository,
	mtr repositories.MembershipTypeRepository,
	cr repositories.ClientRepository,
	ps PaymentService,
	db *sqlx.DB,
	now func() time.Time,
) MembershipService {
	if now == nil {
		now = time.Now
	}
	return &membershipService{
		membershipRepo:     mr,
		membershipTypeRepo: mtr,
		clientRepo:         cr,
		paymentService:     ps,
		db:                 db,
		now:                now,
	}
}

func (s *membershipService) loadMembershipType(ctx context.Context, typeID int64) (*models.MembershipType, error) {
	membershipType, err := s.membershipTypeRepo.GetMembershipTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, persistenceError("getting membership type", err)
	}
	return membershipType, nil
}

// startPeriod inserts a new membership starting now and records its payment.
// Both writes share one transaction; nothing is kept if either fails.
func (s *membershipService) startPeriod(ctx context.Context, clientID int64, membershipType *models.MembershipType) (int64, error) {
	start := s.now().UTC()
	membership := &models.Membership{
		ClientID:         clientID,
		MembershipTypeID: membershipType.ID,
		StartDate:        start,
		ExpirationDate:   membershipType.ExpirationFrom(start),
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, persistenceError("starting transaction", err)
	}
	defer tx.Rollback() // Rollback if not committed

	membershipID, err := s.membershipRepo.CreateMembership(ctx, tx, membership)
	if err != nil {
		return 0, persistenceError("creating membership", err)
	}

	if _, err := s.paymentService.RecordMembershipPayment(ctx, tx, membershipID, membershipType.Price); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, persistenceError("committing membership", err)
	}
	return membershipID, nil
}

func (s *membershipService) CreateMembership(ctx context.Context, clientID, membershipTypeID int64) (int64, error) {
	if clientID <= 0 {
		return 0, validationError("client id must be positive")
	}
	if membershipTypeID <= 0 {
		return 0, validationError("membership type id must be positive")
	}

	exists, err := s.clientRepo.ClientExists(ctx, clientID)
	if err != nil {
		return 0, persistenceError("checking client", err)
	}
	if !exists {
		return 0, ErrClientNotFound
	}

	membershipType, err := s.loadMembershipType(ctx, membershipTypeID)
	if err != nil {
		return 0, err
	}

	membershipID, err := s.startPeriod(ctx, clientID, membershipType)
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("membership_id", membershipID).
		Int64("client_id", clientID).
		Str("membership_type", membershipType.Name).
		Float64("amount", membershipType.Price).
		Msg("Membership created")
	return membershipID, nil
}

func (s *membershipService) RenewMembership(ctx context.Context, membershipID int64, newTypeID *int64) (int64, error) {
	if membershipID <= 0 {
		return 0, validationError("membership id must be positive")
	}
	if newTypeID != nil && *newTypeID <= 0 {
		return 0, validationError("membership type id must be positive")
	}

	prior, err := s.membershipRepo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrMembershipNotFound
		}
		return 0, persistenceError("getting membership", err)
	}

	typeID := prior.MembershipTypeID
	if newTypeID != nil {
		typeID = *newTypeID
	}
	membershipType, err := s.loadMembershipType(ctx, typeID)
	if err != nil {
		return 0, err
	}

	renewedID, err := s.startPeriod(ctx, prior.ClientID, membershipType)
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("membership_id", renewedID).
		Int64("renewed_from", prior.ID).
		Int64("client_id", prior.ClientID).
		Str("membership_type", membershipType.Name).
		Float64("amount", membershipType.Price).
		Msg("Membership renewed")
	return renewedID, nil
}

func (s *membershipService) getMembership(ctx context.Context, membershipID int64) (*models.Membership, error) {
	membership, err := s.membershipRepo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, persistenceError("getting membership", err)
	}
	return membership, nil
}

func (s *membershipService) StatusOf(ctx context.Context, membershipID int64) (models.MembershipStatus, error) {
	membership, err := s.getMembership(ctx, membershipID)
	if err != nil {
		return "", err
	}
	return membership.StatusAt(s.now()), nil
}

func (s *membershipService) GetMembershipByID(ctx context.Context, membershipID int64) (*models.MembershipWithStatus, error) {
	membership, err := s.getMembership(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	return &models.MembershipWithStatus{Membership: *membership, Status: membership.StatusAt(s.now())}, nil
}

func (s *membershipService) GetClientMemberships(ctx context.Context, clientID int64) ([]models.MembershipWithStatus, error) {
	exists, err := s.clientRepo.ClientExists(ctx, clientID)
	if err != nil {
		return nil, persistenceError("checking client", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}
	return s.ListMemberships(ctx, &clientID)
}

// ListMemberships returns memberships with their status attached; a nil
// clientID lists every client.
func (s *membershipService) ListMemberships(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error) {
	var memberships []models.Membership
	var err error
	if clientID != nil {
		memberships, err = s.membershipRepo.GetMembershipsByClient(ctx, *clientID)
	} else {
		memberships, err = s.membershipRepo.GetMemberships(ctx)
	}
	if err != nil {
		return nil, persistenceError("listing memberships", err)
	}

	now := s.now()
	result := make([]models.MembershipWithStatus, 0, len(memberships))
	for _, m := range memberships {
		result = append(result, models.MembershipWithStatus{Membership: m, Status: m.StatusAt(now)})
	}
	return result, nil
}

// ListByStatus returns the memberships whose derived status is exactly status.
func (s *membershipService) ListByStatus(ctx context.Context, status models.MembershipStatus, clientID *int64) ([]models.MembershipWithStatus, error) {
	if !models.IsValidMembershipStatus(string(status)) {
		return nil, validationError("unknown membership status %q", status)
	}
	all, err := s.ListMemberships(ctx, clientID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.MembershipWithStatus, 0, len(all))
	for _, m := range all {
		if m.Status == status {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *membershipService) ListActive(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error) {
	return s.ListByStatus(ctx, models.MembershipStatusActive, clientID)
}

func (s *membershipService) ListExpiringSoon(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error) {
	return s.ListByStatus(ctx, models.MembershipStatusExpiringSoon, clientID)
}

func (s *membershipService) ListExpired(ctx context.Context, clientID *int64) ([]models.MembershipWithStatus, error) {
	return s.ListByStatus(ctx, models.MembershipStatusExpired, clientID)
}

// HasActiveMembership reports whether any of the client's memberships still
// grants access (active or expiring soon).
func (s *membershipService) HasActiveMembership(ctx context.Context, clientID int64) (bool, error) {
	memberships, err := s.membershipRepo.GetMembershipsByClient(ctx, clientID)
	if err != nil {
		return false, persistenceError(fmt.Sprintf("listing memberships of client %d", clientID), err)
	}
	now := s.now()
	for _, m := range memberships {
		if m.StatusAt(now).IsCurrent() {
			return true, nil
		}
	}
	return false, nil
}

func (s *membershipService) DeleteMembership(ctx context.Context, membershipID int64) error {
	if err := s.membershipRepo.DeleteMembership(ctx, nil, membershipID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return persistenceError("deleting membership", err)
	}
	log.Info().Int64("membership_id", membershipID).Msg("Membership deleted")
	return nil
}
