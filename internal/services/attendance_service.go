package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"gorm.io/gorm"
)

// ErrNoSessionsRemaining is returned when a check-in is attempted on a
// membership whose session counter has reached zero.
var ErrNoSessionsRemaining = errors.New("no sessions remaining")

// CheckInRequest is the payload for marking attendance.
type CheckInRequest struct {
	MembershipID int64  `json:"membership_id" binding:"required"`
	Notes        string `json:"notes,omitempty"`
}

// CheckInResult reports the outcome of a check-in. AlreadyPresent is true when
// the membership had a visit today and nothing was changed.
type CheckInResult struct {
	Visit          *models.Visit `json:"visit"`
	AlreadyPresent bool          `json:"already_present"`
}

// AttendanceEntry is one row on the attendance page: an active membership
// annotated with today's presence.
type AttendanceEntry struct {
	Membership     models.Membership `json:"membership"`
	CheckedInToday bool              `json:"checked_in_today"`
	VisitID        *int64            `json:"visit_id,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

// AttendanceService handles check-in and check-out with session bookkeeping.
type AttendanceService struct {
	db             *gorm.DB
	membershipRepo repositories.MembershipRepository
	visitRepo      repositories.VisitRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	db *gorm.DB,
	membershipRepo repositories.MembershipRepository,
	visitRepo repositories.VisitRepository,
) *AttendanceService {
	return &AttendanceService{db: db, membershipRepo: membershipRepo, visitRepo: visitRepo}
}

// CheckIn records today's visit and burns one session. When the membership is
// already checked in today the call is a no-op and returns the existing visit.
func (s *AttendanceService) CheckIn(req CheckInRequest) (*CheckInResult, error) {
	membership, err := s.membershipRepo.GetMembershipByID(req.MembershipID)
	if err != nil {
		return nil, err
	}
	if membership.Status != models.MembershipStatusActive {
		return nil, fmt.Errorf("%w: membership is not active", ErrValidation)
	}

	today := time.Now()
	existing, err := s.visitRepo.FindVisitOnDay(req.MembershipID, today)
	if err == nil {
		return &CheckInResult{Visit: existing, AlreadyPresent: true}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if membership.SessionsRemaining <= 0 {
		return nil, ErrNoSessionsRemaining
	}

	visit := &models.Visit{
		MembershipID: req.MembershipID,
		Notes:        req.Notes,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.visitRepo.CreateVisit(tx, visit); err != nil {
			return err
		}
		return s.membershipRepo.UpdateSessionsRemaining(tx, req.MembershipID, -1)
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Check-in recorded", map[string]interface{}{
		"membership_id": req.MembershipID,
		"visit_id":      visit.ID,
	})
	return &CheckInResult{Visit: visit}, nil
}

// CheckOut removes today's visit and refunds the session. When there is no
// visit today the call silently does nothing; the front desk treats the two
// states as a toggle.
func (s *AttendanceService) CheckOut(membershipID int64) error {
	if _, err := s.membershipRepo.GetMembershipByID(membershipID); err != nil {
		return err
	}

	visit, err := s.visitRepo.FindVisitOnDay(membershipID, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.visitRepo.DeleteVisit(tx, visit.ID); err != nil {
			return err
		}
		return s.membershipRepo.UpdateSessionsRemaining(tx, membershipID, +1)
	})
	if err != nil {
		return err
	}

	utils.LogInfo("Check-in undone", map[string]interface{}{
		"membership_id": membershipID,
		"visit_id":      visit.ID,
	})
	return nil
}

// UpdateNotes replaces the notes on today's visit. Silently does nothing when
// the membership has no visit today.
func (s *AttendanceService) UpdateNotes(membershipID int64, notes string) error {
	visit, err := s.visitRepo.FindVisitOnDay(membershipID, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.visitRepo.UpdateVisitNotes(s.db, visit.ID, notes)
}

// Search finds active memberships by client ID or name fragment and annotates
// each with today's presence.
func (s *AttendanceService) Search(clientID *int64, nameSearch *string) ([]AttendanceEntry, error) {
	var nameLower *string
	if nameSearch != nil {
		lowered := strings.ToLower(strings.TrimSpace(*nameSearch))
		nameLower = &lowered
	}

	memberships, err := s.membershipRepo.SearchActiveMemberships(clientID, nameLower)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.ID)
	}
	visits, err := s.visitRepo.GetVisitsOnDayForMemberships(time.Now(), ids)
	if err != nil {
		return nil, err
	}
	visitByMembership := make(map[int64]models.Visit, len(visits))
	for _, v := range visits {
		visitByMembership[v.MembershipID] = v
	}

	entries := make([]AttendanceEntry, 0, len(memberships))
	for _, m := range memberships {
		entry := AttendanceEntry{Membership: m}
		if v, ok := visitByMembership[m.ID]; ok {
			entry.CheckedInToday = true
			entry.VisitID = &v.ID
			entry.Notes = v.Notes
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ListVisits returns the visits for one calendar day, optionally filtered by a
// client or club name fragment. An empty date means today.
func (s *AttendanceService) ListVisits(filters models.VisitFilters) ([]models.Visit, error) {
	day := time.Now()
	if filters.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filters.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be yyyy-mm-dd", ErrValidation)
		}
		day = parsed
	}

	visits, err := s.visitRepo.GetVisitsOnDay(day)
	if err != nil {
		return nil, err
	}
	if filters.Search == "" {
		return visits, nil
	}

	search := strings.ToLower(filters.Search)
	filtered := visits[:0]
	for _, v := range visits {
		if visitMatches(&v, search) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func visitMatches(v *models.Visit, search string) bool {
	if v.Membership == nil {
		return false
	}
	if v.Membership.Client != nil && strings.Contains(strings.ToLower(v.Membership.Client.FullName), search) {
		return true
	}
	if v.Membership.Club != nil && strings.Contains(strings.ToLower(v.Membership.Club.Name), search) {
		return true
	}
	return false
}

// TotalVisitsToday returns today's visit count for the dashboard.
func (s *AttendanceService) TotalVisitsToday() (int64, error) {
	return s.visitRepo.CountVisitsOnDay(time.Now())
}
