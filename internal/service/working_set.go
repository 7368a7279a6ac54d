package service

import (
	"ITInventory/internal/model"
	"sync"
)

// WorkingSet — снимок записей в памяти между перезагрузками.
// Изменяется только после успешной операции с хранилищем.
type WorkingSet struct {
	mu     sync.RWMutex
	items  []model.InventoryItem
	loaded bool
}

// Snapshot возвращает копию текущего снимка.
func (w *WorkingSet) Snapshot() []model.InventoryItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.InventoryItem, len(w.items))
	copy(out, w.items)
	return out
}

// Loaded сообщает, была ли хотя бы одна успешная загрузка.
func (w *WorkingSet) Loaded() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded
}

// Replace целиком заменяет снимок.
func (w *WorkingSet) Replace(items []model.InventoryItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = make([]model.InventoryItem, len(items))
	copy(w.items, items)
	w.loaded = true
}

// Upsert заменяет запись с тем же id или добавляет её в конец.
func (w *WorkingSet) Upsert(it model.InventoryItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == it.ID {
			w.items[i] = it
			return
		}
	}
	w.items = append(w.items, it)
}

// Remove удаляет запись по id, если она есть.
func (w *WorkingSet) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i:i], w.items[i+1:]...)
			return
		}
	}
}
