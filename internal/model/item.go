package model

import "strings"

// Канонические значения статуса устройства.
const (
	StatusInUse     = "In Use"
	StatusAvailable = "Available"
	StatusRetired   = "Retired"
)

// LocationOther — пункт списка локаций, после выбора которого локация вводится вручную.
const LocationOther = "Other"

// Statuses возвращает канонический набор статусов в порядке отображения.
func Statuses() []string {
	return []string{StatusInUse, StatusAvailable, StatusRetired}
}

// DefaultLocations — стандартные локации площадки.
var DefaultLocations = []string{
	"IT Office", "Reception", "Server Room", "CEO Office", "Lobby",
	"HR", "Finance", "Storage", "Meeting Room",
}

// DefaultSiteLocations — локации конкретного отеля, используются если SITE_LOCATIONS не задан.
var DefaultSiteLocations = []string{"crudo", "s-lounge", "social kitchen", "parisa"}

// ItemFields — изменяемые поля записи инвентаря (без идентификатора).
type ItemFields struct {
	DeviceName   string
	SerialNumber string
	Location     string
	Status       string
	AssignedTo   string
}

// InventoryItem — запись инвентаря. ID выдаёт хранилище и для вызывающего кода непрозрачен.
type InventoryItem struct {
	ID string
	ItemFields
}

// Values возвращает поля записи в порядке колонок таблицы.
func (f ItemFields) Values() []string {
	return []string{f.DeviceName, f.SerialNumber, f.Location, f.Status, f.AssignedTo}
}

// NormalizeStatus приводит статус к виду для сравнения: trim + lower.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalStatus возвращает каноническое написание статуса.
// ok=false если значение не входит в канонический набор.
func CanonicalStatus(s string) (string, bool) {
	n := NormalizeStatus(s)
	for _, st := range Statuses() {
		if NormalizeStatus(st) == n {
			return st, true
		}
	}
	return s, false
}

// LocationOptions собирает список для выбора локации: стандартные, локации площадки и "Other".
func LocationOptions(site []string) []string {
	opts := make([]string, 0, len(DefaultLocations)+len(site)+1)
	opts = append(opts, DefaultLocations...)
	for _, s := range site {
		s = strings.TrimSpace(s)
		if s == "" || s == LocationOther || contains(opts, s) {
			continue
		}
		opts = append(opts, s)
	}
	return append(opts, LocationOther)
}

// NormalizeLocation возвращает итоговое значение локации по выбранному пункту.
// Для "Other" берётся введённый вручную текст (с обрезкой пробелов).
func NormalizeLocation(choice, other string) string {
	if choice == LocationOther {
		return strings.TrimSpace(other)
	}
	return choice
}

// SplitLocation — обратная операция для формы редактирования:
// значение из списка возвращается как выбор, любое другое — как ("Other", value).
func SplitLocation(value string, options []string) (choice, other string) {
	if value != LocationOther && contains(options, value) {
		return value, ""
	}
	return LocationOther, value
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
