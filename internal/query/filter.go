// Package query содержит чистые функции над рабочим набором записей: поиск и агрегаты по статусам.
package query

import (
	"ITInventory/internal/model"
	"strings"
)

// Filter оставляет записи, у которых строка из пяти полей (через пробел) содержит query
// без учёта регистра. Пустой запрос возвращает items как есть. Порядок сохраняется.
func Filter(items []model.InventoryItem, query string) []model.InventoryItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	res := make([]model.InventoryItem, 0, len(items))
	for _, it := range items {
		if Matches(it, q) {
			res = append(res, it)
		}
	}
	return res
}

// Matches проверяет одну запись; q уже должен быть обрезан и приведён к нижнему регистру.
func Matches(it model.InventoryItem, q string) bool {
	row := strings.ToLower(strings.Join(it.Values(), " "))
	return strings.Contains(row, q)
}
