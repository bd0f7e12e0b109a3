// Package export renders bill lists as downloadable spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"backoffice.app/billing/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatXLSX
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName names an export taken at now.
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("bills_%s.%s", now.UTC().Format("20060102_150405"), f)
}

const sheetName = "Bills"

var headers = []string{
	"ID", "Bill Number", "Bill Date", "Dealer", "Branch",
	"Amount", "Paid", "Pending", "Status", "Bill Image",
}

// Write renders bills in format f.
func Write(w io.Writer, f Format, bills []*model.Bill) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, bills)
	case FormatXLSX:
		return WriteXLSX(w, bills)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

func WriteCSV(w io.Writer, bills []*model.Bill) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, b := range bills {
		if err := cw.Write(row(b)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, bills []*model.Bill) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for i, b := range bills {
		r := i + 2
		values := []any{
			b.ID,
			b.BillNumber,
			b.BillDate.Format("2006-01-02"),
			displayName(b.DealerName, b.DealerID),
			displayName(b.BranchName, b.BranchID),
			// Money stays numeric so the sheet can sum it.
			float64(b.Amount.Cents()) / 100,
			float64(b.Paid.Cents()) / 100,
			float64(b.Pending.Cents()) / 100,
			string(b.Status),
			imagePath(b),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func row(b *model.Bill) []string {
	return []string{
		fmt.Sprint(b.ID),
		b.BillNumber,
		b.BillDate.Format("2006-01-02"),
		displayName(b.DealerName, b.DealerID),
		displayName(b.BranchName, b.BranchID),
		b.Amount.String(),
		b.Paid.String(),
		b.Pending.String(),
		string(b.Status),
		imagePath(b),
	}
}

func displayName(name *string, id string) string {
	if name != nil && *name != "" {
		return *name
	}
	return id
}

func imagePath(b *model.Bill) string {
	if b.BillImage == nil {
		return ""
	}
	return *b.BillImage
}
