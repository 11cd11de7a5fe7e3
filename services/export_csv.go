package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"workzen/dto"
	"workzen/models"
)

// payslipCSVHeaders is the fixed column order for payroll exports. Downstream
// spreadsheets depend on it, do not reorder.
var payslipCSVHeaders = []string{
	"Employee ID", "Employee Name", "Department", "Month",
	"Basic Salary", "HRA", "DA", "Gross Earnings",
	"PF", "Income Tax", "Professional Tax", "Net Salary", "Status",
}

// PayslipsCSV renders payslips as CSV with one header line followed by one
// line per payslip.
func PayslipsCSV(payslips []models.Payslip) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(payslipCSVHeaders); err != nil {
		return nil, err
	}
	for _, p := range payslips {
		row := []string{
			p.User.LoginID,
			p.User.FullName,
			p.User.Department,
			p.PayrollMonth.Format("January 2006"),
			fmt.Sprintf("%.2f", p.BasicSalary),
			fmt.Sprintf("%.2f", p.HRA),
			fmt.Sprintf("%.2f", p.DA),
			fmt.Sprintf("%.2f", p.GrossEarnings),
			fmt.Sprintf("%.2f", p.PF),
			fmt.Sprintf("%.2f", p.IncomeTax),
			fmt.Sprintf("%.2f", p.ProfessionalTax),
			fmt.Sprintf("%.2f", p.NetSalary),
			p.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportCSV renders a report row-set as CSV, headers first.
func ReportCSV(data *dto.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(data.Headers); err != nil {
		return nil, err
	}
	for _, row := range data.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
