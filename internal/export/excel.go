package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/repo"
)

const inventorySheet = "Inventory"

// WriteInventoryXLSX writes items to an XLSX workbook at path, one row
// per item under a header row on a single Inventory sheet.
func WriteInventoryXLSX(path string, items []ledger.InventoryItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, h := range inventoryHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(inventorySheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for idx, it := range items {
		row := idx + 2
		f.SetCellValue(inventorySheet, fmt.Sprintf("A%d", row), it.Name)
		f.SetCellValue(inventorySheet, fmt.Sprintf("B%d", row), it.Quantity)
		f.SetCellValue(inventorySheet, fmt.Sprintf("C%d", row), it.BuyPrice.String())
		f.SetCellValue(inventorySheet, fmt.Sprintf("D%d", row), it.SellPrice.String())
		f.SetCellValue(inventorySheet, fmt.Sprintf("E%d", row), it.Barcode)
	}
	f.SetColWidth(inventorySheet, "A", "A", 28)
	f.SetColWidth(inventorySheet, "B", "D", 12)
	f.SetColWidth(inventorySheet, "E", "E", 18)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ReadInventoryXLSX inserts every data row of the workbook's first
// sheet into the repository. Short rows are padded with empty cells,
// matching how spreadsheets drop trailing blanks.
func ReadInventoryXLSX(ctx context.Context, rp *repo.Repo, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("workbook has no header row")
	}

	inserted := 0
	for i, rec := range rows[1:] {
		for len(rec) < len(inventoryHeader) {
			rec = append(rec, "")
		}
		it, err := parseInventoryRecord(rec)
		if err != nil {
			return inserted, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := rp.InsertItem(ctx, &it); err != nil {
			return inserted, fmt.Errorf("row %d: %w", i+2, err)
		}
		inserted++
	}
	return inserted, nil
}
