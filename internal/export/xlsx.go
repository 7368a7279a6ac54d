package export

import (
	"ITInventory/internal/model"
	"io"

	"github.com/tealeg/xlsx/v3"
)

// SheetName — имя листа в XLSX-экспорте.
const SheetName = "Inventory"

// WriteXLSX пишет книгу с одним листом: заголовок и строки в том же порядке, что и CSV.
func WriteXLSX(w io.Writer, items []model.InventoryItem) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return err
	}
	addRow(sheet, Header)
	for _, it := range items {
		addRow(sheet, it.Values())
	}
	return file.Write(w)
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

// ExportXLSX атомарно записывает XLSX в path.
func ExportXLSX(path string, items []model.InventoryItem) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteXLSX(w, items)
	})
}
