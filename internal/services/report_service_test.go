package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T, env *testEnv) (*ReportService, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewReportService(reports.NewExporter(root), env.clientRepo, env.membershipRepo, env.visitRepo, env.paymentRepo)
	return svc, root
}

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newReportService(t, env)

	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)

	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)

	summary, err := svc.GetDashboardSummary()
	require.NoError(t, err)
	assert.EqualValues(t, 1, summary.VisitsToday)
	assert.Equal(t, 800.0, summary.PaymentsToday)
	assert.EqualValues(t, 1, summary.ActiveMemberships)
	assert.EqualValues(t, 1, summary.TotalClients)
}

func TestExportPaymentsDayWritesFile(t *testing.T) {
	env := newTestEnv(t)
	svc, root := newReportService(t, env)

	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	env.purchase(t, client.ID, club.ID, 8)

	path, err := svc.ExportPaymentsDay("")
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, filepath.Join(root, "finance", "day", "payments_"+today+".xlsx"), path)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestExportPaymentsMonthWritesFile(t *testing.T) {
	env := newTestEnv(t)
	svc, root := newReportService(t, env)

	client := env.createClient(t, "Iryna Kovalenko")
	_, err := env.payments.RecordCustomCharge(RecordPaymentRequest{
		ClientID:    client.ID,
		Amount:      300,
		Method:      models.PaymentMethodCard,
		Description: "Personal training",
	})
	require.NoError(t, err)

	month := time.Now().Format("2006-01")
	path, err := svc.ExportPaymentsMonth(month)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "finance", "month", "payments_"+month+".xlsx"), path)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestExportVisitsDayWritesFile(t *testing.T) {
	env := newTestEnv(t)
	svc, root := newReportService(t, env)

	client := env.createClient(t, "Iryna Kovalenko")
	club := env.createClub(t, "Yoga", 800, 1100)
	membership := env.purchase(t, client.ID, club.ID, 8)
	_, err := env.attendance.CheckIn(CheckInRequest{MembershipID: membership.ID})
	require.NoError(t, err)

	path, err := svc.ExportVisitsDay("")
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, filepath.Join(root, "attendance", "day", "visits_"+today+".xlsx"), path)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestExportRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newReportService(t, env)

	_, err := svc.ExportPaymentsDay("31-12-2025")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ExportPaymentsMonth("December")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExportRejectsEmptyResultSets(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newReportService(t, env)

	_, err := svc.ExportPaymentsDay("2000-01-01")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ExportPaymentsMonth("2000-01")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ExportVisitsDay("2000-01-01")
	assert.ErrorIs(t, err, ErrValidation)
}
