package services

import (
	"bytes"
	"fmt"

	"workzen/dto"
	"workzen/models"

	"github.com/jung-kurt/gofpdf"
)

const pdfDetailRowCap = 50

// PayslipPDF renders a single payslip as an A4 PDF document.
func PayslipPDF(payslip *models.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "WorkZen HRMS", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Payslip for %s", payslip.PayrollMonth.Format("January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Employee Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	detail := func(label, value string) {
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	detail("Employee ID", payslip.User.LoginID)
	detail("Name", payslip.User.FullName)
	detail("Department", dash(payslip.User.Department))
	detail("Position", dash(payslip.User.JobPosition))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(95, 8, "Earnings", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 8, "Deductions", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	amount := func(v float64) string { return fmt.Sprintf("Rs. %.2f", v) }
	line := func(earnLabel string, earn float64, dedLabel string, ded float64) {
		pdf.CellFormat(55, 7, earnLabel, "L", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, amount(earn), "R", 0, "R", false, 0, "")
		pdf.CellFormat(55, 7, dedLabel, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, amount(ded), "R", 1, "R", false, 0, "")
	}
	line("Basic Salary", payslip.BasicSalary, "Provident Fund", payslip.PF)
	line("HRA", payslip.HRA, "Income Tax", payslip.IncomeTax)
	line("DA", payslip.DA, "Professional Tax", payslip.ProfessionalTax)

	pdf.SetFont("Arial", "B", 10)
	totalDeductions := payslip.PF + payslip.IncomeTax + payslip.ProfessionalTax
	pdf.CellFormat(55, 8, "Gross Earnings", "LT", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount(payslip.GrossEarnings), "TR", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, "Total Deductions", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, amount(totalDeductions), "TR", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(220, 235, 220)
	pdf.CellFormat(95, 10, "Net Salary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 10, amount(payslip.NetSalary), "1", 1, "R", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, "This is a system generated payslip and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportPDF renders a report as a landscape PDF: title, summary stats, then
// the detail table. The table is capped at 50 rows to keep the document
// readable, the CSV export carries the full set.
func ReportPDF(data *dto.ReportData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, data.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "Period: "+data.Period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(data.Summary) > 0 {
		statWidth := 277.0 / float64(len(data.Summary))
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(235, 240, 250)
		for _, stat := range data.Summary {
			pdf.CellFormat(statWidth, 8, stat.Label, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, stat := range data.Summary {
			pdf.CellFormat(statWidth, 8, pdfSanitize(stat.Value), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(12)
	}

	if len(data.Headers) > 0 {
		colWidth := 277.0 / float64(len(data.Headers))
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range data.Headers {
			pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for i, row := range data.Rows {
			if i >= pdfDetailRowCap {
				pdf.SetFont("Arial", "I", 8)
				pdf.CellFormat(0, 7, fmt.Sprintf("... and %d more rows, see the CSV export for the full data.", len(data.Rows)-pdfDetailRowCap), "", 1, "L", false, 0, "")
				break
			}
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, pdfSanitize(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfSanitize replaces glyphs the core fonts cannot render.
func pdfSanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '₹':
			out = append(out, 'R', 's', '.', ' ')
		case r == '⭐':
			out = append(out, '*')
		case r > 0xFF:
			out = append(out, '?')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
