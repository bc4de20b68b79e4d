// Package reports renders the front-desk Excel exports: daily and monthly
// finance sheets plus the daily attendance sheet.
package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fitclub_backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Exporter writes .xlsx files under a fixed directory layout:
//
//	<root>/finance/day/payments_<yyyy-mm-dd>.xlsx
//	<root>/finance/month/payments_<yyyy-mm>.xlsx
//	<root>/attendance/day/visits_<yyyy-mm-dd>.xlsx
type Exporter struct {
	root string
}

// NewExporter creates an Exporter rooted at the given directory.
func NewExporter(root string) *Exporter {
	return &Exporter{root: root}
}

func (e *Exporter) preparePath(parts ...string) (string, error) {
	path := filepath.Join(append([]string{e.root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	return path, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
}

func titleStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
}

func boldStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func clientLabel(c *models.Client) (name, phone string) {
	if c == nil {
		return "", ""
	}
	return c.FullName, c.Phone
}

// methodTotals sums amounts per payment method in display order.
func methodTotals(payments []models.Payment) ([]string, map[string]float64, float64) {
	totals := make(map[string]float64, len(models.PaymentMethods))
	var grand float64
	for _, p := range payments {
		totals[p.Method] += p.Amount
		grand += p.Amount
	}
	return models.PaymentMethods, totals, grand
}

func writePaymentRows(f *excelize.File, startRow int, payments []models.Payment) (int, error) {
	row := startRow
	for _, p := range payments {
		name, phone := clientLabel(p.Client)
		err := setRow(f, row,
			p.ID,
			p.PaymentDate.Format("2006-01-02 15:04"),
			name,
			phone,
			p.Description,
			p.Method,
			p.Amount,
		)
		if err != nil {
			return row, err
		}
		row++
	}
	return row, nil
}

func writePaymentHeader(f *excelize.File, title string) error {
	tStyle, err := titleStyle(f)
	if err != nil {
		return err
	}
	hStyle, err := headerStyle(f)
	if err != nil {
		return err
	}

	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", tStyle); err != nil {
		return err
	}
	if err := setRow(f, 3, "ID", "Time", "Client", "Phone", "Description", "Method", "Amount"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A3", "G3", hStyle); err != nil {
		return err
	}

	widths := map[string]float64{"A": 8, "B": 18, "C": 28, "D": 16, "E": 36, "F": 12, "G": 12}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// writePaymentTotals appends the grand total and one subtotal line per method.
func writePaymentTotals(f *excelize.File, row int, payments []models.Payment) (int, error) {
	bStyle, err := boldStyle(f)
	if err != nil {
		return row, err
	}

	methods, totals, grand := methodTotals(payments)
	row++
	if err := setRow(f, row, "", "", "", "", "", "Total:", grand); err != nil {
		return row, err
	}
	totalCell, _ := excelize.CoordinatesToCellName(6, row)
	amountCell, _ := excelize.CoordinatesToCellName(7, row)
	if err := f.SetCellStyle(sheetName, totalCell, amountCell, bStyle); err != nil {
		return row, err
	}

	for _, method := range methods {
		row++
		if err := setRow(f, row, "", "", "", "", "", method+":", totals[method]); err != nil {
			return row, err
		}
	}
	return row, nil
}

// ExportPaymentsDay writes the daily finance report and returns the file path.
func (e *Exporter) ExportPaymentsDay(day time.Time, payments []models.Payment) (string, error) {
	path, err := e.preparePath("finance", "day", fmt.Sprintf("payments_%s.xlsx", day.Format("2006-01-02")))
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	title := fmt.Sprintf("Payments for %s", day.Format("2006-01-02"))
	if err := writePaymentHeader(f, title); err != nil {
		return "", fmt.Errorf("writing report header: %w", err)
	}
	row, err := writePaymentRows(f, 4, payments)
	if err != nil {
		return "", fmt.Errorf("writing report rows: %w", err)
	}
	if _, err := writePaymentTotals(f, row, payments); err != nil {
		return "", fmt.Errorf("writing report totals: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}

// ExportPaymentsMonth writes the monthly finance report: all payment rows, the
// method breakdown and a per-day totals table.
func (e *Exporter) ExportPaymentsMonth(year int, month time.Month, payments []models.Payment) (string, error) {
	stamp := fmt.Sprintf("%04d-%02d", year, month)
	path, err := e.preparePath("finance", "month", fmt.Sprintf("payments_%s.xlsx", stamp))
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writePaymentHeader(f, fmt.Sprintf("Payments for %s", stamp)); err != nil {
		return "", fmt.Errorf("writing report header: %w", err)
	}
	row, err := writePaymentRows(f, 4, payments)
	if err != nil {
		return "", fmt.Errorf("writing report rows: %w", err)
	}
	row, err = writePaymentTotals(f, row, payments)
	if err != nil {
		return "", fmt.Errorf("writing report totals: %w", err)
	}

	bStyle, err := boldStyle(f)
	if err != nil {
		return "", err
	}
	row += 2
	if err := setRow(f, row, "Daily totals"); err != nil {
		return "", err
	}
	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetCellStyle(sheetName, labelCell, labelCell, bStyle); err != nil {
		return "", err
	}

	perDay := make(map[string]float64)
	for _, p := range payments {
		perDay[p.PaymentDate.Format("2006-01-02")] += p.Amount
	}
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	for d := 1; d <= daysInMonth; d++ {
		key := fmt.Sprintf("%s-%02d", stamp, d)
		total, ok := perDay[key]
		if !ok {
			continue
		}
		row++
		if err := setRow(f, row, key, total); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}

// ExportVisitsDay writes the daily attendance report and returns the file path.
func (e *Exporter) ExportVisitsDay(day time.Time, visits []models.Visit) (string, error) {
	path, err := e.preparePath("attendance", "day", fmt.Sprintf("visits_%s.xlsx", day.Format("2006-01-02")))
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	tStyle, err := titleStyle(f)
	if err != nil {
		return "", err
	}
	hStyle, err := headerStyle(f)
	if err != nil {
		return "", err
	}
	bStyle, err := boldStyle(f)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Visits for %s", day.Format("2006-01-02"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return "", err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", tStyle); err != nil {
		return "", err
	}
	if err := setRow(f, 3, "ID", "Time", "Client", "Phone", "Club", "Sessions left", "Notes"); err != nil {
		return "", err
	}
	if err := f.SetCellStyle(sheetName, "A3", "G3", hStyle); err != nil {
		return "", err
	}
	widths := map[string]float64{"A": 8, "B": 18, "C": 28, "D": 16, "E": 24, "F": 14, "G": 36}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return "", err
		}
	}

	row := 4
	for _, v := range visits {
		var name, phone, clubName string
		sessionsLeft := 0
		if v.Membership != nil {
			name, phone = clientLabel(v.Membership.Client)
			if v.Membership.Club != nil {
				clubName = v.Membership.Club.Name
			}
			sessionsLeft = v.Membership.SessionsRemaining
		}
		err := setRow(f, row,
			v.ID,
			v.VisitDate.Format("2006-01-02 15:04"),
			name,
			phone,
			clubName,
			sessionsLeft,
			v.Notes,
		)
		if err != nil {
			return "", fmt.Errorf("writing report rows: %w", err)
		}
		row++
	}

	row++
	if err := setRow(f, row, "", "", "", "", "", "Total visits:", len(visits)); err != nil {
		return "", err
	}
	totalCell, _ := excelize.CoordinatesToCellName(6, row)
	countCell, _ := excelize.CoordinatesToCellName(7, row)
	if err := f.SetCellStyle(sheetName, totalCell, countCell, bStyle); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}
