package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
}

func TestAddDuration(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		value int
		unit  DurationUnit
		want  time.Time
	}{
		{"days", date(2024, time.March, 1), 10, DurationDays, date(2024, time.March, 11)},
		{"days across year end", date(2024, time.December, 25), 10, DurationDays, date(2025, time.January, 4)},
		{"weeks", date(2024, time.March, 1), 2, DurationWeeks, date(2024, time.March, 15)},
		{"one month", date(2024, time.March, 15), 1, DurationMonths, date(2024, time.April, 15)},
		{"month end into leap february", date(2024, time.January, 31), 1, DurationMonths, date(2024, time.February, 29)},
		{"month end into plain february", date(2023, time.January, 31), 1, DurationMonths, date(2023, time.February, 28)},
		{"31st into 30-day month", date(2024, time.March, 31), 1, DurationMonths, date(2024, time.April, 30)},
		{"twelve months", date(2024, time.February, 29), 12, DurationMonths, date(2025, time.February, 28)},
		{"months across year end", date(2024, time.November, 30), 3, DurationMonths, date(2025, time.February, 28)},
		{"unknown unit leaves start", date(2024, time.March, 1), 3, DurationUnit("years"), date(2024, time.March, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AddDuration(tc.start, tc.value, tc.unit)
			assert.True(t, tc.want.Equal(got), "AddDuration(%v, %d, %s) = %v; want %v", tc.start, tc.value, tc.unit, got, tc.want)
		})
	}
}

func TestMembershipTypeExpirationFrom(t *testing.T) {
	monthly := MembershipType{Name: "Monthly", DurationValue: 1, DurationUnit: DurationMonths, Price: 500}
	got := monthly.ExpirationFrom(date(2024, time.January, 31))
	assert.Equal(t, date(2024, time.February, 29), got)
}

func TestStatusAt(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration time.Time
		want       MembershipStatus
	}{
		{"expiration equals now is active", now, MembershipStatusActive},
		{"one second past is expired", now.Add(-time.Second), MembershipStatusExpired},
		{"long past is expired", now.AddDate(-1, 0, 0), MembershipStatusExpired},
		{"one second left is expiring soon", now.Add(time.Second), MembershipStatusExpiringSoon},
		{"exactly seven days is expiring soon", now.Add(ExpiringSoonWindow), MembershipStatusExpiringSoon},
		{"seven days and a second is active", now.Add(ExpiringSoonWindow + time.Second), MembershipStatusActive},
		{"a month left is active", now.AddDate(0, 1, 0), MembershipStatusActive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusAt(tc.expiration, now))
		})
	}
}

func TestStatusAtIsStable(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	m := Membership{StartDate: now.AddDate(0, -1, 0), ExpirationDate: now.Add(72 * time.Hour)}

	first := m.StatusAt(now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.StatusAt(now))
	}
}

func TestMembershipStatusIsCurrent(t *testing.T) {
	assert.True(t, MembershipStatusActive.IsCurrent())
	assert.True(t, MembershipStatusExpiringSoon.IsCurrent())
	assert.False(t, MembershipStatusExpired.IsCurrent())
}

func TestIsValidDurationUnit(t *testing.T) {
	assert.True(t, IsValidDurationUnit("days"))
	assert.True(t, IsValidDurationUnit("weeks"))
	assert.True(t, IsValidDurationUnit("months"))
	assert.False(t, IsValidDurationUnit("years"))
	assert.False(t, IsValidDurationUnit(""))
}
