package services

import (
	"testing"

	"fitclub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInBurnsOneSession(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	result, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID, Notes: "first time"})
	require.NoError(t, err)
	assert.False(t, result.AlreadyPresent)
	assert.Equal(t, "first time", result.Visit.Notes)

	updated, err := env.membership.GetMembership(membership.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.SessionsRemaining)
}

func TestCheckInTwiceSameDayIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	first, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)

	second, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)
	assert.True(t, second.AlreadyPresent)
	assert.Equal(t, first.Visit.ID, second.Visit.ID)

	updated, err := env.membership.GetMembership(membership.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.SessionsRemaining)
}

func TestCheckInRejectsExhaustedMembership(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)
	require.NoError(t, env.membershipRepo.UpdateSessionsRemaining(env.db, membership.ID, -8))

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	assert.ErrorIs(t, err, ErrNoSessionsRemaining)
}

func TestCheckInRejectsCompletedMembership(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)
	require.NoError(t, env.membershipRepo.UpdateStatus(env.db, membership.ID, models.MembershipStatusCompleted))

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckOutRefundsSession(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)
	require.NoError(t, env.attendance.CheckOut(membership.ID))

	updated, err := env.membership.GetMembership(membership.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.SessionsRemaining)

	// The visit is gone, so a fresh check-in works again.
	result, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)
	assert.False(t, result.AlreadyPresent)
}

func TestCheckOutWithoutVisitIsSilent(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	require.NoError(t, env.attendance.CheckOut(membership.ID))

	updated, err := env.membership.GetMembership(membership.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.SessionsRemaining)
}

func TestUpdateNotesOnTodaysVisit(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)
	require.NoError(t, env.attendance.UpdateNotes(membership.ID, "brought a guest"))

	entries, err := env.attendance.Search(&client.ID, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "brought a guest", entries[0].Notes)
}

func TestUpdateNotesWithoutVisitIsSilent(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	require.NoError(t, env.attendance.UpdateNotes(membership.ID, "ignored"))
}

func TestSearchAnnotatesPresence(t *testing.T) {
	env := newTestEnv(t)
	present := env.createClient(t, "Iryna Kovalenko")
	absent := env.createClient(t, "Oleh Shevchenko")
	club := env.createClub(t, "Yoga", 800, 1100)

	presentMembership := env.purchase(t, present.ID, club.ID, 8)
	env.purchase(t, absent.ID, club.ID, 8)

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: presentMembership.ID})
	require.NoError(t, err)

	entries, err := env.attendance.Search(nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byMembership := make(map[int64]AttendanceEntry)
	for _, e := range entries {
		byMembership[e.Membership.ID] = e
	}
	assert.True(t, byMembership[presentMembership.ID].CheckedInToday)
	for id, e := range byMembership {
		if id != presentMembership.ID {
			assert.False(t, e.CheckedInToday)
		}
	}
}

func TestSearchByNameFragment(t *testing.T) {
	env := newTestEnv(t)
	match := env.createClient(t, "Iryna Kovalenko")
	other := env.createClient(t, "Oleh Shevchenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	env.purchase(t, match.ID, club.ID, 8)
	env.purchase(t, other.ID, club.ID, 8)

	name := "KOVAL"
	entries, err := env.attendance.Search(nil, &name)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, match.ID, entries[0].Membership.ClientID)
}

func TestListVisitsFiltersBySearch(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)

	visits, err := env.attendance.ListVisits(models.VisitFilters{Search: "kovalenko"})
	require.NoError(t, err)
	assert.Len(t, visits, 1)

	visits, err = env.attendance.ListVisits(models.VisitFilters{Search: "nobody"})
	require.NoError(t, err)
	assert.Len(t, visits, 0)
}

func TestTotalVisitsToday(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	count, err := env.attendance.TotalVisitsToday()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)

	count, err = env.attendance.TotalVisitsToday()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
