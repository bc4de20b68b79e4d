package repositories

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// VisitRepository defines the interface for attendance storage. Day matching
// uses half-open [startOfDay, nextDay) ranges on the visit timestamp.
type VisitRepository interface {
	CreateVisit(tx *gorm.DB, visit *models.Visit) (int64, error)
	FindVisitOnDay(membershipID int64, day time.Time) (*models.Visit, error)
	DeleteVisit(tx *gorm.DB, id int64) error
	UpdateVisitNotes(tx *gorm.DB, id int64, notes string) error
	GetVisitsOnDay(day time.Time) ([]models.Visit, error)
	GetVisitsOnDayForMemberships(day time.Time, membershipIDs []int64) ([]models.Visit, error)
	CountVisitsOnDay(day time.Time) (int64, error)
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new instance of VisitRepository.
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

// dayRange returns the half-open interval covering the calendar day of t.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *visitRepository) CreateVisit(tx *gorm.DB, visit *models.Visit) (int64, error) {
	if visit.VisitDate.IsZero() {
		visit.VisitDate = time.Now()
	}
	if err := tx.Create(visit).Error; err != nil {
		return 0, fmt.Errorf("%w: creating visit: %v", ErrDatabaseError, err)
	}
	return visit.ID, nil
}

// FindVisitOnDay returns the membership's visit on the given calendar day,
// or ErrNotFound when there is none.
func (r *visitRepository) FindVisitOnDay(membershipID int64, day time.Time) (*models.Visit, error) {
	start, end := dayRange(day)
	var visit models.Visit
	err := r.db.
		Where("membership_id = ? AND visit_date >= ? AND visit_date < ?", membershipID, start, end).
		First(&visit).Error
	if err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding visit for membership %d: %v", ErrDatabaseError, membershipID, err)
	}
	return &visit, nil
}

func (r *visitRepository) DeleteVisit(tx *gorm.DB, id int64) error {
	result := tx.Delete(&models.Visit{}, "visit_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: deleting visit ID %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *visitRepository) UpdateVisitNotes(tx *gorm.DB, id int64, notes string) error {
	result := tx.Model(&models.Visit{}).
		Where("visit_id = ?", id).
		Update("notes", notes)
	if result.Error != nil {
		return fmt.Errorf("%w: updating notes for visit ID %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetVisitsOnDay lists a day's visits with client and club joined, newest first.
func (r *visitRepository) GetVisitsOnDay(day time.Time) ([]models.Visit, error) {
	start, end := dayRange(day)
	visits := []models.Visit{}
	err := r.db.
		Preload("Membership.Client").
		Preload("Membership.Club").
		Where("visit_date >= ? AND visit_date < ?", start, end).
		Order("visit_date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying visits: %v", ErrDatabaseError, err)
	}
	return visits, nil
}

// GetVisitsOnDayForMemberships returns the day's visits for the given
// memberships, used to annotate attendance search results with presence.
func (r *visitRepository) GetVisitsOnDayForMemberships(day time.Time, membershipIDs []int64) ([]models.Visit, error) {
	if len(membershipIDs) == 0 {
		return []models.Visit{}, nil
	}
	start, end := dayRange(day)
	visits := []models.Visit{}
	err := r.db.
		Where("membership_id IN ? AND visit_date >= ? AND visit_date < ?", membershipIDs, start, end).
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying visits for memberships: %v", ErrDatabaseError, err)
	}
	return visits, nil
}

func (r *visitRepository) CountVisitsOnDay(day time.Time) (int64, error) {
	start, end := dayRange(day)
	var count int64
	err := r.db.Model(&models.Visit{}).
		Where("visit_date >= ? AND visit_date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: counting visits: %v", ErrDatabaseError, err)
	}
	return count, nil
}
