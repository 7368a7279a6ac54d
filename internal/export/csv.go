// Package export сериализует рабочий набор записей в CSV и XLSX.
package export

import (
	"ITInventory/internal/model"
	"encoding/csv"
	"io"
)

// Header — фиксированная строка заголовка, порядок колонок совпадает с model.ItemFields.Values.
var Header = []string{"Device Name", "Serial Number", "Location", "Status", "Assigned To"}

// WriteCSV пишет заголовок и по одной строке на запись. Значения не нормализуются.
func WriteCSV(w io.Writer, items []model.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write(it.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV атомарно записывает CSV в path: либо файл целиком, либо ошибка ErrIO.
func ExportCSV(path string, items []model.InventoryItem) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteCSV(w, items)
	})
}
