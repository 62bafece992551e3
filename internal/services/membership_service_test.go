package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMembershipComputesPeriodAndRecordsPayment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)

	id, err := env.memberships.CreateMembership(ctx, client.ID, monthly.ID)
	require.NoError(t, err)

	membership, err := env.memberships.GetMembershipByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, client.ID, membership.ClientID)
	assert.True(t, membership.StartDate.Equal(env.clock.now))
	assert.True(t, membership.ExpirationDate.Equal(time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC)),
		"got %v", membership.ExpirationDate)
	assert.Equal(t, models.MembershipStatusActive, membership.Status)

	payments, err := env.payments.GetPaymentsByMembership(ctx, id)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 500.0, payments[0].Amount)
	assert.True(t, payments[0].PaidAt.Equal(env.clock.now))
}

func TestCreateMembershipValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	weekly := env.createType(t, "Weekly", 1, models.DurationWeeks, 150)

	_, err := env.memberships.CreateMembership(ctx, 0, weekly.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.memberships.CreateMembership(ctx, client.ID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.memberships.CreateMembership(ctx, 999, weekly.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.memberships.CreateMembership(ctx, client.ID, 999)
	assert.ErrorIs(t, err, ErrMembershipTypeNotFound)

	all, err := env.membershipRepo.GetMemberships(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed creations must not persist anything")
}

func TestRenewMembershipKeepsHistory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)
	annual := env.createType(t, "Annual", 12, models.DurationMonths, 5000)

	firstID, err := env.memberships.CreateMembership(ctx, client.ID, monthly.ID)
	require.NoError(t, err)
	first, err := env.membershipRepo.GetMembershipByID(ctx, firstID)
	require.NoError(t, err)

	env.clock.Advance(40 * 24 * time.Hour)

	renewedID, err := env.memberships.RenewMembership(ctx, firstID, nil)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, renewedID)

	renewed, err := env.membershipRepo.GetMembershipByID(ctx, renewedID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, renewed.ClientID)
	assert.Equal(t, monthly.ID, renewed.MembershipTypeID)
	assert.True(t, renewed.StartDate.Equal(env.clock.now))

	unchanged, err := env.membershipRepo.GetMembershipByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, first, unchanged, "the prior period is never mutated")

	upgradedID, err := env.memberships.RenewMembership(ctx, renewedID, &annual.ID)
	require.NoError(t, err)
	upgraded, err := env.membershipRepo.GetMembershipByID(ctx, upgradedID)
	require.NoError(t, err)
	assert.Equal(t, annual.ID, upgraded.MembershipTypeID)

	history, err := env.memberships.GetClientMemberships(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	payments, err := env.payments.GetPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 3, "one payment per creation event")
	byMembership := map[int64]float64{}
	for _, p := range payments {
		byMembership[p.MembershipID] = p.Amount
	}
	assert.Equal(t, map[int64]float64{firstID: 500, renewedID: 500, upgradedID: 5000}, byMembership)
}

func TestRenewMembershipErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)
	id, err := env.memberships.CreateMembership(ctx, client.ID, monthly.ID)
	require.NoError(t, err)

	_, err = env.memberships.RenewMembership(ctx, 999, nil)
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	missing := int64(999)
	_, err = env.memberships.RenewMembership(ctx, id, &missing)
	assert.ErrorIs(t, err, ErrMembershipTypeNotFound)

	zero := int64(0)
	_, err = env.memberships.RenewMembership(ctx, id, &zero)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatusTransitionsOverTime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	trial := env.createType(t, "Trial", 10, models.DurationDays, 0)

	id, err := env.memberships.CreateMembership(ctx, client.ID, trial.ID)
	require.NoError(t, err)

	status, err := env.memberships.StatusOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusActive, status)

	env.clock.Advance(3 * 24 * time.Hour) // exactly seven days left
	status, err = env.memberships.StatusOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusExpiringSoon, status)

	env.clock.Advance(7 * 24 * time.Hour) // expiration instant
	status, err = env.memberships.StatusOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusActive, status)

	env.clock.Advance(time.Second)
	status, err = env.memberships.StatusOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusExpired, status)

	_, err = env.memberships.StatusOf(ctx, 999)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestStatusListsPartitionMemberships(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.createClient(t, "Alice Smith", "0123456789")
	bob := env.createClient(t, "Bob Jones", "012345678901")
	weekly := env.createType(t, "Weekly", 1, models.DurationWeeks, 150)
	annual := env.createType(t, "Annual", 12, models.DurationMonths, 5000)
	trial := env.createType(t, "Trial", 1, models.DurationDays, 0)

	expiredID, err := env.memberships.CreateMembership(ctx, alice.ID, trial.ID)
	require.NoError(t, err)
	env.clock.Advance(2 * 24 * time.Hour)

	soonID, err := env.memberships.CreateMembership(ctx, alice.ID, weekly.ID)
	require.NoError(t, err)
	activeID, err := env.memberships.CreateMembership(ctx, bob.ID, annual.ID)
	require.NoError(t, err)

	ids := func(list []models.MembershipWithStatus) []int64 {
		out := []int64{}
		for _, m := range list {
			out = append(out, m.ID)
		}
		return out
	}

	active, err := env.memberships.ListActive(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{activeID}, ids(active))

	soon, err := env.memberships.ListExpiringSoon(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{soonID}, ids(soon))

	expired, err := env.memberships.ListExpired(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{expiredID}, ids(expired))

	aliceActive, err := env.memberships.ListActive(ctx, &alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceActive)

	aliceSoon, err := env.memberships.ListExpiringSoon(ctx, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{soonID}, ids(aliceSoon))

	_, err = env.memberships.ListByStatus(ctx, models.MembershipStatus("paused"), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHasActiveMembership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	trial := env.createType(t, "Trial", 10, models.DurationDays, 0)

	has, err := env.memberships.HasActiveMembership(ctx, client.ID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = env.memberships.CreateMembership(ctx, client.ID, trial.ID)
	require.NoError(t, err)
	has, err = env.memberships.HasActiveMembership(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, has)

	env.clock.Advance(5 * 24 * time.Hour) // expiring soon still counts
	has, err = env.memberships.HasActiveMembership(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, has)

	env.clock.Advance(6 * 24 * time.Hour)
	has, err = env.memberships.HasActiveMembership(ctx, client.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestDeleteMembership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	trial := env.createType(t, "Trial", 10, models.DurationDays, 0)
	id, err := env.memberships.CreateMembership(ctx, client.ID, trial.ID)
	require.NoError(t, err)

	require.NoError(t, env.memberships.DeleteMembership(ctx, id))
	assert.ErrorIs(t, env.memberships.DeleteMembership(ctx, id), ErrMembershipNotFound)
}

type failingPayments struct {
	PaymentService
}

func (failingPayments) RecordMembershipPayment(context.Context, repositories.SQLExecutor, int64, float64) (*models.Payment, error) {
	return nil, persistenceError("recording membership payment", errors.New("disk full"))
}

func TestCreateMembershipRollsBackWhenPaymentFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)

	typeRepo := repositories.NewMembershipTypeRepository(env.db)
	svc := NewMembershipService(env.membershipRepo, typeRepo, env.clientRepo, failingPayments{}, env.db, env.clock.Now)

	_, err := svc.CreateMembership(ctx, client.ID, monthly.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	all, err := env.membershipRepo.GetMemberships(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
