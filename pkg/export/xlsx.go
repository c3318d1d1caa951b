// Package export writes listings to spreadsheet files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

const (
	ListingSheet = "Pokedex"
	ChartSheet   = "Weaknesses"
)

// Workbook describes what to export. Cards may be sparse; rows without a
// card leave the detail columns empty. A nil Resolver skips the chart sheet.
type Workbook struct {
	Listings []model.Listing
	Cards    map[int]*dex.Card
	Resolver *model.Resolver
}

var statColumns = []struct {
	stat, header string
}{
	{"hp", "HP"},
	{"attack", "Attack"},
	{"defense", "Defense"},
	{"special-attack", "Sp. Atk"},
	{"special-defense", "Sp. Def"},
	{"speed", "Speed"},
}

func (wb Workbook) withDetails() bool {
	return len(wb.Cards) > 0
}

func (wb Workbook) headers() []any {
	headers := []any{"Number", "Name"}
	if wb.withDetails() {
		headers = append(headers, "Types", "Weak to", "Height (cm)", "Weight (kg)")
		for _, col := range statColumns {
			headers = append(headers, col.header)
		}
		headers = append(headers, "Total")
	}
	return headers
}

func (wb Workbook) row(l model.Listing) []any {
	row := []any{l.Number, dex.DisplayName(l.Entry.Name)}
	if !wb.withDetails() {
		return row
	}

	card, ok := wb.Cards[l.Number]
	if !ok {
		return row
	}
	row = append(row,
		strings.Join(model.Titles(card.Types), ", "),
		strings.Join(model.Titles(card.Weaknesses), ", "),
		card.HeightCm,
		card.WeightKg,
	)
	for _, col := range statColumns {
		base, err := card.BaseStat(col.stat)
		if err != nil {
			row = append(row, "")
			continue
		}
		row = append(row, base)
	}
	return append(row, card.StatTotal())
}

func (wb Workbook) build() (*excelize.File, error) {
	f := excelize.NewFile()

	err := f.SetSheetName("Sheet1", ListingSheet)
	if err != nil {
		return nil, fmt.Errorf("error while naming listing sheet: %w", err)
	}

	err = writeRows(f, ListingSheet, wb.headers(), len(wb.Listings), func(i int) []any {
		return wb.row(wb.Listings[i])
	})
	if err != nil {
		return nil, err
	}

	if wb.Resolver != nil {
		_, err = f.NewSheet(ChartSheet)
		if err != nil {
			return nil, fmt.Errorf("error while creating chart sheet: %w", err)
		}

		err = writeRows(f, ChartSheet, []any{"Type", "Weak to"}, len(model.AllTypes), func(i int) []any {
			typ := model.AllTypes[i]
			weak := wb.Resolver.WeaknessesOf([]model.TypeName{typ})
			return []any{typ.Title(), strings.Join(model.Titles(weak), ", ")}
		})
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, headers []any, n int, row func(int) []any) error {
	err := f.SetSheetRow(sheet, "A1", &headers)
	if err != nil {
		return fmt.Errorf("error while writing %s headers: %w", sheet, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("error while creating header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("error while computing header range: %w", err)
	}
	err = f.SetCellStyle(sheet, "A1", last, style)
	if err != nil {
		return fmt.Errorf("error while styling %s headers: %w", sheet, err)
	}

	for i := range n {
		cells := row(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error while computing row %d: %w", i+2, err)
		}

		err = f.SetSheetRow(sheet, cell, &cells)
		if err != nil {
			return fmt.Errorf("error while writing %s row %d: %w", sheet, i+2, err)
		}
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("error while freezing %s header: %w", sheet, err)
	}

	return nil
}

// Write encodes the workbook as xlsx to w.
func Write(w io.Writer, wb Workbook) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	if err != nil {
		return fmt.Errorf("error while writing workbook: %w", err)
	}

	return nil
}

// WriteFile saves the workbook at path.
func WriteFile(path string, wb Workbook) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	err = f.SaveAs(path)
	if err != nil {
		return fmt.Errorf("error while saving workbook to %q: %w", path, err)
	}

	return nil
}
