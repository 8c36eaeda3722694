// Package export turns a day's log into a spreadsheet. It is a one-way
// collaborator: rows are built from state and handed to the writer, and
// nothing flows back into the tracker.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kberry/kcal/internal/tracker"
)

// SheetName is the single worksheet holding the day's log.
const SheetName = "Daily Calorie Log"

// filenamePrefix and filenameExt frame the calendar date in export filenames.
const (
	filenamePrefix = "Calorie_Log_"
	filenameExt    = ".xlsx"
)

// Column labels, in output order.
const (
	colMeal    = "Meal"
	colFood    = "Food"
	colCal     = "Calories"
	colProtein = "Protein (g)"
	colCarbs   = "Carbs (g)"
	colFat     = "Fat (g)"
	colFiber   = "Fiber (g)"
)

// Row is one spreadsheet row: a mapping of column label to value. Cells
// absent from the map render empty, which is how the summary block uses the
// Meal and Food columns as label/value pairs.
type Row map[string]any

// Columns returns the column labels in output order. The fiber column only
// exists when fiber tracking is on.
func Columns(trackFiber bool) []string {
	cols := []string{colMeal, colFood, colCal, colProtein, colCarbs, colFat}
	if trackFiber {
		cols = append(cols, colFiber)
	}
	return cols
}

// BuildRows flattens the state into export rows: one row per food entry in
// meal-slot order, a blank separator, then the daily summary block.
func BuildRows(st *tracker.State, trackFiber bool) []Row {
	totals := tracker.ComputeTotals(st)
	var rows []Row

	for _, slot := range tracker.MealSlots() {
		for _, f := range st.Meals[slot] {
			row := Row{
				colMeal:    slot.Label(),
				colFood:    f.Name,
				colCal:     f.Calories,
				colProtein: f.Protein,
				colCarbs:   f.Carbs,
				colFat:     f.Fat,
			}
			if trackFiber {
				row[colFiber] = f.Fiber
			}
			rows = append(rows, row)
		}
	}

	rows = append(rows, Row{})
	rows = append(rows, Row{colMeal: "--- DAILY SUMMARY ---"})
	rows = append(rows, Row{colMeal: "Total Calories Eaten", colFood: totals.Calories})
	rows = append(rows, Row{colMeal: "Total Protein (g)", colFood: totals.Protein})
	rows = append(rows, Row{colMeal: "Total Carbs (g)", colFood: totals.Carbs})
	rows = append(rows, Row{colMeal: "Total Fat (g)", colFood: totals.Fat})
	if trackFiber {
		rows = append(rows, Row{colMeal: "Total Fiber (g)", colFood: totals.Fiber})
	}
	rows = append(rows, Row{colMeal: "Calories Burned (Activity)", colFood: st.TotalBurned})
	rows = append(rows, Row{colMeal: "Net Calories", colFood: totals.NetCalories})
	rows = append(rows, Row{colMeal: "Calorie Deficit (from TDEE)", colFood: totals.Deficit})

	return rows
}

// Filename names an export after its calendar date, e.g.
// Calorie_Log_2026-08-31.xlsx.
func Filename(now time.Time) string {
	return filenamePrefix + now.Format("2006-01-02") + filenameExt
}

// Write renders the state as an .xlsx workbook in dir and returns the path
// of the file written.
func Write(st *tracker.State, dir string, trackFiber bool) (string, error) {
	path := filepath.Join(dir, Filename(time.Now()))
	if err := writeWorkbook(path, Columns(trackFiber), BuildRows(st, trackFiber)); err != nil {
		return "", err
	}
	return path, nil
}

func writeWorkbook(path string, cols []string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for c, label := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, label); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for r, row := range rows {
		for c, label := range cols {
			v, ok := row[label]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", r+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
