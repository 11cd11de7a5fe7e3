package services

import (
	"fmt"

	"workzen/dto"

	"github.com/xuri/excelize/v2"
)

// ReportExcel renders a report as a single-sheet XLSX workbook: summary block
// on top, detail table below.
func ReportExcel(data *dto.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", data.Title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "Period: "+data.Period)

	row := 4
	for _, stat := range data.Summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), stat.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stat.Value)
		row++
	}
	row++

	for col, header := range data.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	row++

	for _, dataRow := range data.Rows {
		for col, value := range dataRow {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
