package stats

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
)

// exportHeader is the first row of every export.
var exportHeader = []any{
	"Start Time",
	"End Time",
	"Elapsed (seconds)",
	"Comment",
}

// SheetWriter writes tabular rows to a single-sheet spreadsheet file.
type SheetWriter interface {
	WriteSheet(path string, rows [][]any) error
}

// BuildExportTable assembles the rows handed to the spreadsheet
// writer: a header, one row per record in stored order, a blank
// separator, and two summary rows.
func BuildExportTable(
	records []session.Record,
	totals Totals,
) [][]any {
	rows := [][]any{exportHeader}

	for i := range records {
		rec := records[i]

		rows = append(rows, []any{
			rec.StartTime,
			rec.EndTime,
			rec.Elapsed,
			rec.Comment,
		})
	}

	rows = append(rows,
		[]any{"", "", "", ""},
		[]any{"", "", totals.TotalSeconds, "TOTAL SECONDS"},
		[]any{"", "", FormatHours(totals.TotalHours), "TOTAL HOURS"},
	)

	return rows
}

// Export writes the records whose start date falls in the inclusive
// [start, end] range to a spreadsheet at the given path. An empty
// selection aborts the export with ErrNoRecordsInRange.
func Export(
	db store.Records,
	w SheetWriter,
	start, end time.Time,
	path string,
) error {
	records, err := db.Load()
	if err != nil {
		return err
	}

	selected, err := SelectRange(records, start, end)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		return ErrNoRecordsInRange
	}

	totals := Aggregate(selected)

	return w.WriteSheet(path, BuildExportTable(selected, totals))
}

// XLSXWriter writes export tables to Excel workbooks.
type XLSXWriter struct {
	SheetName string
}

// WriteSheet writes the rows to a single-sheet workbook at the given
// path, overwriting any existing file.
func (x *XLSXWriter) WriteSheet(path string, rows [][]any) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	sheet := x.SheetName
	if sheet == "" {
		sheet = "WorkHours"
	}

	err := f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		err = f.SetSheetRow(sheet, cell, &rows[i])
		if err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
