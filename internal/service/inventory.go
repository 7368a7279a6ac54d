package service

import (
	"ITInventory/internal/export"
	"ITInventory/internal/model"
	"ITInventory/internal/query"
	"ITInventory/internal/repo"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Форматы экспорта.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// InventoryService — операции над инвентарём поверх репозитория и рабочего набора.
// Операции изменения возвращают итоговую запись, и рабочий набор обновляется точечно;
// полная перезагрузка доступна через Reload.
type InventoryService struct {
	repo repo.InventoryRepository
	set  *WorkingSet
	log  *zap.SugaredLogger
}

func NewInventoryService(r repo.InventoryRepository, log *zap.SugaredLogger) *InventoryService {
	return &InventoryService{repo: r, set: &WorkingSet{}, log: log}
}

// WorkingSet возвращает рабочий набор сервиса.
func (s *InventoryService) WorkingSet() *WorkingSet { return s.set }

// Reload загружает все записи из хранилища. При ошибке прежний снимок сохраняется.
func (s *InventoryService) Reload(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	s.set.Replace(items)
	s.log.Debugw("inventory reloaded", "count", len(items))
	return s.set.Snapshot(), nil
}

// Items возвращает текущий снимок.
func (s *InventoryService) Items() []model.InventoryItem {
	return s.set.Snapshot()
}

// Search фильтрует снимок по строке поиска.
func (s *InventoryService) Search(q string) []model.InventoryItem {
	return query.Filter(s.set.Snapshot(), q)
}

// Stats считает агрегаты по снимку.
func (s *InventoryService) Stats() query.Counts {
	return query.AggregateCounts(s.set.Snapshot())
}

// Get читает запись напрямую из хранилища.
func (s *InventoryService) Get(ctx context.Context, id string) (*model.InventoryItem, error) {
	it, err := s.repo.GetInventory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return it, nil
}

// prepare приводит статус к каноническому написанию и проверяет поля.
func prepare(f model.ItemFields) (model.ItemFields, error) {
	if st, ok := model.CanonicalStatus(f.Status); ok {
		f.Status = st
	}
	if err := model.Validate(f).Err(); err != nil {
		return f, err
	}
	return f, nil
}

// Add создаёт запись.
func (s *InventoryService) Add(ctx context.Context, f model.ItemFields) (*model.InventoryItem, error) {
	f, err := prepare(f)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.InsertInventory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	s.set.Upsert(*it)
	s.log.Infow("item added", "id", it.ID, "device", it.DeviceName)
	return it, nil
}

// Edit полностью заменяет поля записи.
func (s *InventoryService) Edit(ctx context.Context, id string, f model.ItemFields) (*model.InventoryItem, error) {
	f, err := prepare(f)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.UpdateInventory(ctx, id, f)
	if err != nil {
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	s.set.Upsert(*it)
	s.log.Infow("item updated", "id", it.ID)
	return it, nil
}

// Delete удаляет запись.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteInventory(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	s.set.Remove(id)
	s.log.Infow("item deleted", "id", id)
	return nil
}

// Export сохраняет текущий снимок в файл. Формат определяется параметром,
// а если он пуст — расширением файла (по умолчанию CSV).
func (s *InventoryService) Export(path, format string) error {
	return s.ExportMatching(path, format, "")
}

// ExportMatching сохраняет в файл только записи, подходящие под строку поиска.
func (s *InventoryService) ExportMatching(path, format, q string) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	items := query.Filter(s.set.Snapshot(), q)
	var err error
	switch format {
	case FormatCSV:
		err = export.ExportCSV(path, items)
	case FormatXLSX:
		err = export.ExportXLSX(path, items)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}
	s.log.Infow("inventory exported", "path", path, "format", format, "count", len(items))
	return nil
}

// FormatFromPath выбирает формат по расширению файла.
func FormatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}
