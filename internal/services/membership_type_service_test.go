package services

import (
	"context"
	"testing"

	"gym_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMembershipTypeValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  CreateMembershipTypeRequest
	}{
		{"empty name", CreateMembershipTypeRequest{Name: " ", DurationValue: 1, DurationUnit: "days", Price: 1}},
		{"zero duration", CreateMembershipTypeRequest{Name: "Zero", DurationValue: 0, DurationUnit: "days", Price: 1}},
		{"unknown unit", CreateMembershipTypeRequest{Name: "Yearly", DurationValue: 1, DurationUnit: "years", Price: 1}},
		{"negative price", CreateMembershipTypeRequest{Name: "Refund", DurationValue: 1, DurationUnit: "days", Price: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.membershipType.CreateMembershipType(ctx, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	env.createType(t, "Monthly", 1, models.DurationMonths, 500)
	_, err := env.membershipType.CreateMembershipType(ctx, CreateMembershipTypeRequest{Name: "Monthly", DurationValue: 4, DurationUnit: "weeks", Price: 450})
	assert.ErrorIs(t, err, ErrMembershipTypeNameExists)
}

func TestMembershipTypesListedByPrice(t *testing.T) {
	env := newTestEnv(t)
	env.createType(t, "Annual", 12, models.DurationMonths, 5000)
	env.createType(t, "Trial", 3, models.DurationDays, 0)
	env.createType(t, "Monthly", 1, models.DurationMonths, 500)

	types, err := env.membershipType.GetMembershipTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "Trial", types[0].Name)
	assert.Equal(t, "Monthly", types[1].Name)
	assert.Equal(t, "Annual", types[2].Name)
}

func TestUpdateMembershipType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)
	env.createType(t, "Weekly", 1, models.DurationWeeks, 150)

	price := 550.0
	unit := "weeks"
	value := 4
	updated, err := env.membershipType.UpdateMembershipType(ctx, monthly.ID, UpdateMembershipTypeRequest{Price: &price, DurationUnit: &unit, DurationValue: &value})
	require.NoError(t, err)
	assert.Equal(t, 550.0, updated.Price)
	assert.Equal(t, models.DurationWeeks, updated.DurationUnit)

	stored, err := env.membershipType.GetMembershipTypeByID(ctx, monthly.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	taken := "Weekly"
	_, err = env.membershipType.UpdateMembershipType(ctx, monthly.ID, UpdateMembershipTypeRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrMembershipTypeNameExists)

	bad := "fortnights"
	_, err = env.membershipType.UpdateMembershipType(ctx, monthly.ID, UpdateMembershipTypeRequest{DurationUnit: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.membershipType.UpdateMembershipType(ctx, 999, UpdateMembershipTypeRequest{Price: &price})
	assert.ErrorIs(t, err, ErrMembershipTypeNotFound)
}

func TestDeleteMembershipTypeGatedByUsage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.createClient(t, "Alice Smith", "0123456789")
	monthly := env.createType(t, "Monthly", 1, models.DurationMonths, 500)
	unused := env.createType(t, "Unused", 1, models.DurationDays, 10)

	_, err := env.memberships.CreateMembership(ctx, client.ID, monthly.ID)
	require.NoError(t, err)

	err = env.membershipType.DeleteMembershipType(ctx, monthly.ID)
	assert.ErrorIs(t, err, ErrMembershipTypeInUse)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, env.membershipType.DeleteMembershipType(ctx, unused.ID))
	assert.ErrorIs(t, env.membershipType.DeleteMembershipType(ctx, unused.ID), ErrMembershipTypeNotFound)
}
