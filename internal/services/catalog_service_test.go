package services

import (
	"testing"

	"fitclub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClubRejectsNonPositivePrices(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateClub(CreateClubRequest{
		Name:            "Yoga",
		Price8Sessions:  0,
		Price12Sessions: 1100,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.catalog.CreateClub(CreateClubRequest{
		Name:            "Yoga",
		Price8Sessions:  800,
		Price12Sessions: -1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateClubChecksTrainerExists(t *testing.T) {
	env := newTestEnv(t)

	missing := int64(99)
	_, err := env.catalog.CreateClub(CreateClubRequest{
		Name:            "Yoga",
		TrainerID:       &missing,
		Price8Sessions:  800,
		Price12Sessions: 1100,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreateClubWithTrainerAndRoom(t *testing.T) {
	env := newTestEnv(t)

	trainer, err := env.catalog.CreateTrainer(CreateTrainerRequest{
		FullName: "Olena Tkachenko",
		Phone:    "+380501112233",
	})
	require.NoError(t, err)

	room, err := env.catalog.CreateRoom(CreateRoomRequest{
		RoomNumber: "101",
		Name:       "Main hall",
	})
	require.NoError(t, err)

	club, err := env.catalog.CreateClub(CreateClubRequest{
		Name:            "Yoga",
		TrainerID:       &trainer.ID,
		RoomID:          &room.ID,
		Price8Sessions:  800,
		Price12Sessions: 1100,
	})
	require.NoError(t, err)
	require.NotNil(t, club.Trainer)
	assert.Equal(t, "Olena Tkachenko", club.Trainer.FullName)
	require.NotNil(t, club.Room)
	assert.Equal(t, "101", club.Room.RoomNumber)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateRoom(CreateRoomRequest{RoomNumber: "101", Name: "Main hall"})
	require.NoError(t, err)

	_, err = env.catalog.CreateRoom(CreateRoomRequest{RoomNumber: "101", Name: "Second hall"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestListClubsFiltersByTrainerName(t *testing.T) {
	env := newTestEnv(t)

	trainer, err := env.catalog.CreateTrainer(CreateTrainerRequest{
		FullName: "Olena Tkachenko",
		Phone:    "+380501112233",
	})
	require.NoError(t, err)

	_, err = env.catalog.CreateClub(CreateClubRequest{
		Name:            "Yoga",
		TrainerID:       &trainer.ID,
		Price8Sessions:  800,
		Price12Sessions: 1100,
	})
	require.NoError(t, err)
	env.createClub(t, "Boxing", 900, 1250)

	search := "tkachenko"
	clubs, err := env.catalog.ListClubs(&search)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Yoga", clubs[0].Name)
}

func TestDeactivatedClubHiddenFromList(t *testing.T) {
	env := newTestEnv(t)
	club := env.createClub(t, "Yoga", 800, 1100)
	env.createClub(t, "Boxing", 900, 1250)

	require.NoError(t, env.catalog.DeactivateClub(club.ID))

	clubs, err := env.catalog.ListClubs(nil)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Boxing", clubs[0].Name)
}
