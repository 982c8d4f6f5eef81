// Package xlsxexport renders a filing's tax breakdown as an XLSX workbook
// with summary, by-state, and by-slab sheets.
package xlsxexport

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"gstmitra/internal/domain"
)

const (
	summarySheet = "Summary"
	stateSheet   = "By State"
	slabSheet    = "By Tax Slab"
)

// WriteFiling writes the filing as an XLSX workbook to w.
func WriteFiling(w io.Writer, filing *domain.Filing) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeSummary(f, filing); err != nil {
		return err
	}
	if err := writeStates(f, &filing.Calc); err != nil {
		return err
	}
	if err := writeSlabs(f, &filing.Calc); err != nil {
		return err
	}

	// excelize creates "Sheet1" by default; rename it to the summary sheet.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	return f.Write(w)
}

func writeSummary(f *excelize.File, filing *domain.Filing) error {
	calc := &filing.Calc
	rows := [][]interface{}{
		{"File Name", filing.FileName},
		{"Record Count", len(filing.Records)},
		{"Total Sales", calc.TotalSales},
		{"CGST", calc.CGST},
		{"SGST", calc.SGST},
		{"IGST", calc.IGST},
		{"Total Tax", calc.TotalTax},
		{"Business Size", string(filing.Analysis.BusinessSize)},
		{"Compliance Risk", string(filing.Analysis.ComplianceRisk)},
		{"Primary State", filing.Analysis.PrimaryState},
		{"Primary Tax Slab", fmt.Sprintf("%.0f%%", filing.Analysis.PrimaryTaxSlab)},
		{"Average Transaction", filing.Analysis.AverageTransaction},
		{"GSTR-1 Due", filing.Plan.GSTR1DueDate.Format("02 Jan 2006")},
		{"GSTR-3B Due", filing.Plan.GSTR3BDueDate.Format("02 Jan 2006")},
	}
	return writeRows(f, "Sheet1", rows)
}

func writeStates(f *excelize.File, calc *domain.TaxCalculation) error {
	if _, err := f.NewSheet(stateSheet); err != nil {
		return err
	}

	states := make([]string, 0, len(calc.SalesByState))
	for state := range calc.SalesByState {
		states = append(states, state)
	}
	sort.Strings(states)

	rows := [][]interface{}{{"State", "Sales"}}
	for _, state := range states {
		rows = append(rows, []interface{}{state, calc.SalesByState[state]})
	}
	return writeRows(f, stateSheet, rows)
}

func writeSlabs(f *excelize.File, calc *domain.TaxCalculation) error {
	if _, err := f.NewSheet(slabSheet); err != nil {
		return err
	}

	slabs := make([]float64, 0, len(calc.SalesByTaxSlab))
	for slab := range calc.SalesByTaxSlab {
		slabs = append(slabs, slab)
	}
	sort.Float64s(slabs)

	rows := [][]interface{}{{"Tax Slab", "Sales"}}
	for _, slab := range slabs {
		rows = append(rows, []interface{}{fmt.Sprintf("%.0f%%", slab), calc.SalesByTaxSlab[slab]})
	}
	return writeRows(f, slabSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
