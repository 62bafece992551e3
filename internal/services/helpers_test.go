package services

import (
	"context"
	"testing"
	"time"

	"gym_backend/internal/database"
	"gym_backend/internal/models"
	"gym_backend/internal/repositories"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	db             *sqlx.DB
	clock          *fakeClock
	clients        ClientService
	membershipType MembershipTypeService
	memberships    MembershipService
	payments       PaymentService
	equipment      EquipmentService

	clientRepo     repositories.ClientRepository
	membershipRepo repositories.MembershipRepository
	paymentRepo    repositories.PaymentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := &fakeClock{now: time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)}

	clientRepo := repositories.NewClientRepository(db)
	typeRepo := repositories.NewMembershipTypeRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	payments := NewPaymentService(paymentRepo, membershipRepo, clock.Now)
	memberships := NewMembershipService(membershipRepo, typeRepo, clientRepo, payments, db, clock.Now)

	return &testEnv{
		db:             db,
		clock:          clock,
		clients:        NewClientService(clientRepo, memberships, clock.Now),
		membershipType: NewMembershipTypeService(typeRepo),
		memberships:    memberships,
		payments:       payments,
		equipment:      NewEquipmentService(repositories.NewEquipmentRepository(db), clock.Now),
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
	}
}

func (e *testEnv) createClient(t *testing.T, name, phone string) *models.Client {
	t.Helper()
	client, err := e.clients.CreateClient(context.Background(), CreateClientRequest{FullName: name, PhoneNumber: phone})
	require.NoError(t, err)
	return client
}

func (e *testEnv) createType(t *testing.T, name string, value int, unit models.DurationUnit, price float64) *models.MembershipType {
	t.Helper()
	membershipType, err := e.membershipType.CreateMembershipType(context.Background(), CreateMembershipTypeRequest{
		Name: name, DurationValue: value, DurationUnit: string(unit), Price: price,
	})
	require.NoError(t, err)
	return membershipType
}
