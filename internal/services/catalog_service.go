package services

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"gorm.io/gorm"
)

// CreateClubRequest is the payload for adding a club section.
type CreateClubRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description,omitempty"`
	TrainerID       *int64  `json:"trainer_id,omitempty"`
	RoomID          *int64  `json:"room_id,omitempty"`
	Schedule        *string `json:"schedule,omitempty"`
	Price8Sessions  float64 `json:"price_8_sessions" binding:"required"`
	Price12Sessions float64 `json:"price_12_sessions" binding:"required"`
}

// CreateTrainerRequest is the payload for adding a trainer.
type CreateTrainerRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Email          *string `json:"email,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	HireDate       *string `json:"hire_date,omitempty"` // yyyy-mm-dd
}

// CreateRoomRequest is the payload for adding a training hall.
type CreateRoomRequest struct {
	RoomNumber  string   `json:"room_number" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Area        *float64 `json:"area,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// CatalogService manages the club, trainer and room reference data.
type CatalogService struct {
	db          *gorm.DB
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *gorm.DB, catalogRepo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{db: db, catalogRepo: catalogRepo}
}

func validateClubPrices(price8, price12 float64) error {
	if price8 <= 0 || price12 <= 0 {
		return fmt.Errorf("%w: both package prices must be positive", ErrValidation)
	}
	return nil
}

// CreateClub adds a club section after checking its trainer and room exist.
func (s *CatalogService) CreateClub(req CreateClubRequest) (*models.Club, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: club name is required", ErrValidation)
	}
	if err := validateClubPrices(req.Price8Sessions, req.Price12Sessions); err != nil {
		return nil, err
	}
	if req.TrainerID != nil {
		if _, err := s.catalogRepo.GetTrainerByID(*req.TrainerID); err != nil {
			return nil, err
		}
	}
	if req.RoomID != nil {
		if _, err := s.catalogRepo.GetRoomByID(*req.RoomID); err != nil {
			return nil, err
		}
	}

	club := &models.Club{
		Name:            req.Name,
		Description:     req.Description,
		TrainerID:       req.TrainerID,
		RoomID:          req.RoomID,
		Schedule:        req.Schedule,
		Price8Sessions:  req.Price8Sessions,
		Price12Sessions: req.Price12Sessions,
	}
	id, err := s.catalogRepo.CreateClub(s.db, club)
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Club created", map[string]interface{}{"club_id": id, "name": club.Name})
	return s.catalogRepo.GetClubByID(id)
}

// GetClub returns one club with trainer and room joined.
func (s *CatalogService) GetClub(id int64) (*models.Club, error) {
	return s.catalogRepo.GetClubByID(id)
}

// ListClubs returns active clubs, optionally filtered by a search term.
func (s *CatalogService) ListClubs(searchTerm *string) ([]models.Club, error) {
	return s.catalogRepo.GetActiveClubs(searchTerm)
}

// UpdateClub edits a club section.
func (s *CatalogService) UpdateClub(id int64, req CreateClubRequest) (*models.Club, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: club name is required", ErrValidation)
	}
	if err := validateClubPrices(req.Price8Sessions, req.Price12Sessions); err != nil {
		return nil, err
	}

	club := &models.Club{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		TrainerID:       req.TrainerID,
		RoomID:          req.RoomID,
		Schedule:        req.Schedule,
		Price8Sessions:  req.Price8Sessions,
		Price12Sessions: req.Price12Sessions,
	}
	if err := s.catalogRepo.UpdateClub(s.db, club); err != nil {
		return nil, err
	}
	return s.catalogRepo.GetClubByID(id)
}

// DeactivateClub hides a club from sale. Existing memberships keep running.
func (s *CatalogService) DeactivateClub(id int64) error {
	return s.catalogRepo.DeactivateClub(s.db, id)
}

// CreateTrainer adds a trainer.
func (s *CatalogService) CreateTrainer(req CreateTrainerRequest) (*models.Trainer, error) {
	if !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone must start with +380 and hold a full number", ErrValidation)
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	trainer := &models.Trainer{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		Specialization: req.Specialization,
	}
	if req.HireDate != nil && *req.HireDate != "" {
		hired, err := time.ParseInLocation("2006-01-02", *req.HireDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: hire date must be yyyy-mm-dd", ErrValidation)
		}
		trainer.HireDate = &hired
	}

	id, err := s.catalogRepo.CreateTrainer(s.db, trainer)
	if err != nil {
		return nil, err
	}
	trainer.ID = id
	return trainer, nil
}

// ListTrainers returns every trainer ordered by name.
func (s *CatalogService) ListTrainers() ([]models.Trainer, error) {
	return s.catalogRepo.GetTrainers()
}

// CreateRoom adds a training hall. Room numbers must be unique.
func (s *CatalogService) CreateRoom(req CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		Name:        req.Name,
		Area:        req.Area,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	id, err := s.catalogRepo.CreateRoom(s.db, room)
	if err != nil {
		return nil, err
	}
	room.ID = id
	return room, nil
}

// ListRooms returns every room ordered by number.
func (s *CatalogService) ListRooms() ([]models.Room, error) {
	return s.catalogRepo.GetRooms()
}
