package repositories

import (
	"fmt"
	"strings"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository covers the reference data: clubs with their trainer and
// room joins, plus the trainer and room tables themselves.
type CatalogRepository interface {
	CreateClub(tx *gorm.DB, club *models.Club) (int64, error)
	GetClubByID(id int64) (*models.Club, error)
	GetActiveClubs(searchTerm *string) ([]models.Club, error)
	UpdateClub(tx *gorm.DB, club *models.Club) error
	DeactivateClub(tx *gorm.DB, id int64) error

	CreateTrainer(tx *gorm.DB, trainer *models.Trainer) (int64, error)
	GetTrainers() ([]models.Trainer, error)
	GetTrainerByID(id int64) (*models.Trainer, error)

	CreateRoom(tx *gorm.DB, room *models.Room) (int64, error)
	GetRooms() ([]models.Room, error)
	GetRoomByID(id int64) (*models.Room, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateClub(tx *gorm.DB, club *models.Club) (int64, error) {
	club.IsActive = true
	if err := tx.Create(club).Error; err != nil {
		return 0, fmt.Errorf("%w: creating club: %v", ErrDatabaseError, err)
	}
	return club.ID, nil
}

// GetClubByID retrieves a club with its trainer and room joined.
func (r *catalogRepository) GetClubByID(id int64) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Trainer").Preload("Room").First(&club, "club_id = ?", id).Error
	if err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting club by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &club, nil
}

// GetActiveClubs lists active clubs ordered by name, optionally filtered by a
// name/description/trainer substring.
func (r *catalogRepository) GetActiveClubs(searchTerm *string) ([]models.Club, error) {
	clubs := []models.Club{}
	query := r.db.Preload("Trainer").Preload("Room").Where("is_active = ?", true)
	err := query.Order("name ASC").Find(&clubs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying clubs: %v", ErrDatabaseError, err)
	}
	if searchTerm == nil || *searchTerm == "" {
		return clubs, nil
	}

	// Trainer name matching needs the joined row, so filter in memory; the
	// catalog is small.
	search := strings.ToLower(*searchTerm)
	filtered := clubs[:0]
	for _, club := range clubs {
		if clubMatches(&club, search) {
			filtered = append(filtered, club)
		}
	}
	return filtered, nil
}

func clubMatches(club *models.Club, search string) bool {
	if strings.Contains(strings.ToLower(club.Name), search) {
		return true
	}
	if club.Description != nil && strings.Contains(strings.ToLower(*club.Description), search) {
		return true
	}
	if club.Trainer != nil && strings.Contains(strings.ToLower(club.Trainer.FullName), search) {
		return true
	}
	return false
}

func (r *catalogRepository) UpdateClub(tx *gorm.DB, club *models.Club) error {
	result := tx.Model(&models.Club{}).
		Where("club_id = ?", club.ID).
		Updates(map[string]interface{}{
			"name":            club.Name,
			"description":     club.Description,
			"trainer_id":      club.TrainerID,
			"room_id":         club.RoomID,
			"schedule":        club.Schedule,
			"price8sessions":  club.Price8Sessions,
			"price12sessions": club.Price12Sessions,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: updating club ID %d: %v", ErrDatabaseError, club.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *catalogRepository) DeactivateClub(tx *gorm.DB, id int64) error {
	result := tx.Model(&models.Club{}).
		Where("club_id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("%w: deactivating club ID %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *catalogRepository) CreateTrainer(tx *gorm.DB, trainer *models.Trainer) (int64, error) {
	trainer.IsActive = true
	if err := tx.Create(trainer).Error; err != nil {
		return 0, fmt.Errorf("%w: creating trainer: %v", ErrDatabaseError, err)
	}
	return trainer.ID, nil
}

func (r *catalogRepository) GetTrainers() ([]models.Trainer, error) {
	trainers := []models.Trainer{}
	if err := r.db.Order("full_name ASC").Find(&trainers).Error; err != nil {
		return nil, fmt.Errorf("%w: querying trainers: %v", ErrDatabaseError, err)
	}
	return trainers, nil
}

func (r *catalogRepository) GetTrainerByID(id int64) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := r.db.First(&trainer, "trainer_id = ?", id).Error; err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting trainer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &trainer, nil
}

// CreateRoom inserts a room; room numbers carry a unique index.
func (r *catalogRepository) CreateRoom(tx *gorm.DB, room *models.Room) (int64, error) {
	if room.Status == "" {
		room.Status = models.RoomStatusFree
	}
	if err := tx.Create(room).Error; err != nil {
		if terr := translateError(err); terr == ErrDuplicateKey {
			return 0, fmt.Errorf("%w: room number %q", ErrDuplicateKey, room.RoomNumber)
		}
		return 0, fmt.Errorf("%w: creating room: %v", ErrDatabaseError, err)
	}
	return room.ID, nil
}

func (r *catalogRepository) GetRooms() ([]models.Room, error) {
	rooms := []models.Room{}
	if err := r.db.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("%w: querying rooms: %v", ErrDatabaseError, err)
	}
	return rooms, nil
}

func (r *catalogRepository) GetRoomByID(id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "room_id = ?", id).Error; err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting room by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &room, nil
}
