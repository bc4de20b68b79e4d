package services

import (
	"testing"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseCreatesMembershipAndPayment(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	membership := env.purchase(t, client.ID, club.ID, 8)

	assert.Equal(t, models.MembershipStatusActive, membership.Status)
	assert.Equal(t, 8, membership.SessionsTotal)
	assert.Equal(t, 8, membership.SessionsRemaining)
	assert.WithinDuration(t, membership.StartDate.AddDate(0, 1, 0), membership.ExpiryDate, time.Hour)

	result, err := env.payments.GetPayments(models.PaymentFilters{})
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, 800.0, result.Payments[0].Amount)
	assert.Equal(t, models.PaymentMethodCash, result.Payments[0].Method)
	require.NotNil(t, result.Payments[0].MembershipID)
	assert.Equal(t, membership.ID, *result.Payments[0].MembershipID)
}

func TestPurchaseUsesTwelveSessionPrice(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Boxing", 900, 1250)

	env.purchase(t, client.ID, club.ID, 12)

	result, err := env.payments.GetPayments(models.PaymentFilters{})
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, 1250.0, result.Payments[0].Amount)
}

func TestPurchaseRejectsUnknownPackage(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	_, err := env.membership.Purchase(PurchaseMembershipRequest{
		ClientID:      client.ID,
		ClubID:        club.ID,
		SessionsCount: 10,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPurchaseRejectsInactiveClub(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	require.NoError(t, env.catalog.DeactivateClub(club.ID))

	_, err := env.membership.Purchase(PurchaseMembershipRequest{
		ClientID:      client.ID,
		ClubID:        club.ID,
		SessionsCount: 8,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFreezeExtendsExpiryAndChargesFee(t *testing.T) {
	cases := []struct {
		months int
		fee    float64
	}{
		{1, 100},
		{2, 150},
		{3, 200},
	}

	for _, tc := range cases {
		env := newTestEnv(t)
		client := env.createClient(t, "Iryna Kovalenko")
		club := env.createClub(t, "Yoga", 800, 1100)
		membership := env.purchase(t, client.ID, club.ID, 8)

		frozen, err := env.membership.Freeze(membership.ID, FreezeMembershipRequest{
			Months:        tc.months,
			PaymentMethod: models.PaymentMethodCard,
		})
		require.NoError(t, err)
		assert.WithinDuration(t, membership.ExpiryDate.AddDate(0, tc.months, 0), frozen.ExpiryDate, time.Hour)
		assert.Equal(t, models.MembershipStatusActive, frozen.Status)

		result, err := env.payments.GetPayments(models.PaymentFilters{Method: models.PaymentMethodCard})
		require.NoError(t, err)
		require.Len(t, result.Payments, 1)
		assert.Equal(t, tc.fee, result.Payments[0].Amount)
	}
}

func TestFreezeRejectsInvalidDuration(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	_, err := env.membership.Freeze(membership.ID, FreezeMembershipRequest{
		Months:        4,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFreezeRejectsCompletedMembership(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)
	require.NoError(t, env.membershipRepo.UpdateStatus(env.db, membership.ID, models.MembershipStatusCompleted))

	_, err := env.membership.Freeze(membership.ID, FreezeMembershipRequest{
		Months:        1,
		PaymentMethod: models.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpireSweepClosesExpiredAndExhausted(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	expired := env.purchase(t, client.ID, club.ID, 8)
	require.NoError(t, env.membershipRepo.UpdateExpiryDate(env.db, expired.ID, time.Now().AddDate(0, 0, -1)))

	exhausted := env.purchase(t, client.ID, club.ID, 8)
	require.NoError(t, env.membershipRepo.UpdateSessionsRemaining(env.db, exhausted.ID, -8))

	healthy := env.purchase(t, client.ID, club.ID, 12)

	closed, err := env.membership.ExpireSweep()
	require.NoError(t, err)
	assert.Equal(t, 2, closed)

	for _, tc := range []struct {
		id   int64
		want string
	}{
		{expired.ID, models.MembershipStatusCompleted},
		{exhausted.ID, models.MembershipStatusCompleted},
		{healthy.ID, models.MembershipStatusActive},
	} {
		m, err := env.membership.GetMembership(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.Status)
	}

	// Second run has nothing left to close.
	closed, err = env.membership.ExpireSweep()
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestExpireSweepKeepsMembershipExpiringToday(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	membership := env.purchase(t, client.ID, club.ID, 8)
	today := time.Now()
	require.NoError(t, env.membershipRepo.UpdateExpiryDate(env.db, membership.ID,
		time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())))

	closed, err := env.membership.ExpireSweep()
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestGetClientMembershipsListsOnlyActive(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	active := env.purchase(t, client.ID, club.ID, 8)
	done := env.purchase(t, client.ID, club.ID, 12)
	require.NoError(t, env.membershipRepo.UpdateStatus(env.db, done.ID, models.MembershipStatusCompleted))

	memberships, err := env.membership.GetClientMemberships(client.ID)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, active.ID, memberships[0].ID)
}
