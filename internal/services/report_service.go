package services

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/reports"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"
)

// ReportService builds the dashboard counters and the Excel exports.
type ReportService struct {
	exporter       *reports.Exporter
	clientRepo     repositories.ClientRepository
	membershipRepo repositories.MembershipRepository
	visitRepo      repositories.VisitRepository
	paymentRepo    repositories.PaymentRepository
}

// NewReportService creates a new ReportService.
func NewReportService(
	exporter *reports.Exporter,
	clientRepo repositories.ClientRepository,
	membershipRepo repositories.MembershipRepository,
	visitRepo repositories.VisitRepository,
	paymentRepo repositories.PaymentRepository,
) *ReportService {
	return &ReportService{
		exporter:       exporter,
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		visitRepo:      visitRepo,
		paymentRepo:    paymentRepo,
	}
}

// GetDashboardSummary gathers the home page counters.
func (s *ReportService) GetDashboardSummary() (*models.DashboardSummary, error) {
	now := time.Now()

	visits, err := s.visitRepo.CountVisitsOnDay(now)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.SumPaymentsOnDay(now)
	if err != nil {
		return nil, err
	}
	memberships, err := s.membershipRepo.CountActiveMemberships()
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.CountActiveClients()
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		VisitsToday:       visits,
		PaymentsToday:     payments,
		ActiveMemberships: memberships,
		TotalClients:      clients,
	}, nil
}

func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be yyyy-mm-dd", ErrValidation)
	}
	return day, nil
}

// ExportPaymentsDay writes the daily finance report, returning the file path.
// An empty date means today.
func (s *ReportService) ExportPaymentsDay(rawDate string) (string, error) {
	day, err := parseDay(rawDate)
	if err != nil {
		return "", err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	payments, err := s.paymentRepo.GetPaymentsInRange(start, start.AddDate(0, 0, 1))
	if err != nil {
		return "", err
	}
	if len(payments) == 0 {
		return "", fmt.Errorf("%w: no payments on %s", ErrValidation, day.Format("2006-01-02"))
	}

	path, err := s.exporter.ExportPaymentsDay(day, payments)
	if err != nil {
		return "", err
	}
	utils.LogInfo("Daily finance report exported", map[string]interface{}{"path": path, "rows": len(payments)})
	return path, nil
}

// ExportPaymentsMonth writes the monthly finance report for yyyy-mm, returning
// the file path. An empty month means the current one.
func (s *ReportService) ExportPaymentsMonth(rawMonth string) (string, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if rawMonth != "" {
		parsed, err := time.ParseInLocation("2006-01", rawMonth, time.Local)
		if err != nil {
			return "", fmt.Errorf("%w: month must be yyyy-mm", ErrValidation)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	payments, err := s.paymentRepo.GetPaymentsInRange(start, start.AddDate(0, 1, 0))
	if err != nil {
		return "", err
	}
	if len(payments) == 0 {
		return "", fmt.Errorf("%w: no payments in %04d-%02d", ErrValidation, year, month)
	}

	path, err := s.exporter.ExportPaymentsMonth(year, month, payments)
	if err != nil {
		return "", err
	}
	utils.LogInfo("Monthly finance report exported", map[string]interface{}{"path": path, "rows": len(payments)})
	return path, nil
}

// ExportVisitsDay writes the daily attendance report, returning the file path.
// An empty date means today.
func (s *ReportService) ExportVisitsDay(rawDate string) (string, error) {
	day, err := parseDay(rawDate)
	if err != nil {
		return "", err
	}

	visits, err := s.visitRepo.GetVisitsOnDay(day)
	if err != nil {
		return "", err
	}
	if len(visits) == 0 {
		return "", fmt.Errorf("%w: no visits on %s", ErrValidation, day.Format("2006-01-02"))
	}

	path, err := s.exporter.ExportVisitsDay(day, visits)
	if err != nil {
		return "", err
	}
	utils.LogInfo("Daily attendance report exported", map[string]interface{}{"path": path, "rows": len(visits)})
	return path, nil
}
