package repo

import (
	"ITInventory/internal/model"
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
)

func (rec inventoryRecord) toModel() model.InventoryItem {
	return model.InventoryItem{
		ID: strconv.FormatUint(rec.ID, 10),
		ItemFields: model.ItemFields{
			DeviceName:   rec.DeviceName,
			SerialNumber: rec.SerialNumber,
			Location:     rec.Location,
			Status:       rec.Status,
			AssignedTo:   rec.AssignedTo,
		},
	}
}

// parseID переводит непрозрачный id в ключ таблицы. Некорректный id считается несуществующим;
// принимается только каноническая запись, которую выдаёт toModel ("01" и "+1" — не id 1).
func parseID(id string) (uint64, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 || strconv.FormatUint(n, 10) != id {
		return 0, ErrNotFound
	}
	return n, nil
}

// ListInventory возвращает записи по возрастанию id, т.е. в порядке добавления.
func (r *GormRepository) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	var rows []inventoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// GetInventory возвращает запись по id.
func (r *GormRepository) GetInventory(ctx context.Context, id string) (*model.InventoryItem, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var row inventoryRecord
	err = r.db.WithContext(ctx).First(&row, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it := row.toModel()
	return &it, nil
}

// InsertInventory добавляет запись; id выдаёт БД.
func (r *GormRepository) InsertInventory(ctx context.Context, f model.ItemFields) (*model.InventoryItem, error) {
	row := inventoryRecord{
		DeviceName:   f.DeviceName,
		SerialNumber: f.SerialNumber,
		Location:     f.Location,
		Status:       f.Status,
		AssignedTo:   f.AssignedTo,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	it := row.toModel()
	return &it, nil
}

// UpdateInventory заменяет все пять полей. Через map, чтобы пустые строки тоже записывались.
func (r *GormRepository) UpdateInventory(ctx context.Context, id string, f model.ItemFields) (*model.InventoryItem, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	tx := r.db.WithContext(ctx).Model(&inventoryRecord{}).Where("id = ?", key).Updates(map[string]any{
		"device_name":   f.DeviceName,
		"serial_number": f.SerialNumber,
		"location":      f.Location,
		"status":        f.Status,
		"assigned_to":   f.AssignedTo,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &model.InventoryItem{ID: strconv.FormatUint(key, 10), ItemFields: f}, nil
}

// DeleteInventory удаляет запись по id.
func (r *GormRepository) DeleteInventory(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Delete(&inventoryRecord{}, key)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountInventory возвращает количество записей.
func (r *GormRepository) CountInventory(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&inventoryRecord{}).Count(&n).Error
	return n, err
}
