package query

import "ITInventory/internal/model"

// Bucket — категория статуса для отображения (цветовая маркировка).
type Bucket int

const (
	BucketUnknown Bucket = iota
	BucketInUse
	BucketAvailable
	BucketRetired
)

func (b Bucket) String() string {
	switch b {
	case BucketInUse:
		return "in use"
	case BucketAvailable:
		return "available"
	case BucketRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// BucketOf относит статус к категории после trim + lower. Нераспознанное — BucketUnknown.
func BucketOf(status string) Bucket {
	switch model.NormalizeStatus(status) {
	case "in use":
		return BucketInUse
	case "available":
		return BucketAvailable
	case "retired":
		return BucketRetired
	default:
		return BucketUnknown
	}
}

// Counts — агрегаты для панели статистики.
type Counts struct {
	Total     int
	InUse     int
	Available int
	Retired   int
}

// Unknown — записи с нераспознанным статусом (учтены только в Total).
func (c Counts) Unknown() int {
	return c.Total - c.InUse - c.Available - c.Retired
}

// AggregateCounts считает записи по каноническим статусам.
func AggregateCounts(items []model.InventoryItem) Counts {
	c := Counts{Total: len(items)}
	for _, it := range items {
		switch BucketOf(it.Status) {
		case BucketInUse:
			c.InUse++
		case BucketAvailable:
			c.Available++
		case BucketRetired:
			c.Retired++
		}
	}
	return c
}
