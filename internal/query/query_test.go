package query

import (
	"ITInventory/internal/model"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func item(id, name, serial, loc, status, who string) model.InventoryItem {
	return model.InventoryItem{ID: id, ItemFields: model.ItemFields{
		DeviceName: name, SerialNumber: serial, Location: loc, Status: status, AssignedTo: who,
	}}
}

func sample() []model.InventoryItem {
	return []model.InventoryItem{
		item("1", "Dell Latitude 5420", "SN1234567", "IT Office", "In Use", "Ahmed"),
		item("2", "HP EliteBook 840", "SN9876543", "Reception", "Available", ""),
		item("3", "Cisco Switch 2960", "SW001122", "Server Room", "In Use", "IT Team"),
		item("4", "Ubiquiti AP AC Pro", "UBIAP01", "Lobby", "Retired", ""),
		item("5", "Old Fax", "FAX1", "Storage", "Broken", ""),
	}
}

func ids(items []model.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	items := sample()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(items, q)
		assert.Equal(t, items, got)
	}
	assert.Nil(t, Filter(nil, ""))
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	items := sample()

	assert.Equal(t, []string{"1", "3"}, ids(Filter(items, "in use")))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(items, "  IN USE ")))
	assert.Equal(t, []string{"3"}, ids(Filter(items, "server")))
	assert.Equal(t, []string{"1"}, ids(Filter(items, "ahmed")))
	assert.Equal(t, []string{"2"}, ids(Filter(items, "sn98")))
	assert.Empty(t, Filter(items, "macbook"))

	// совпадение через границу полей: поля склеиваются пробелом
	assert.Equal(t, []string{"4"}, ids(Filter(items, "ubiap01 lobby")))
}

func TestFilter_SingleItemProperty(t *testing.T) {
	it := item("7", "Epson Projector", "PROJ2023", "Meeting Room", "In Use", "All Staff")
	for _, f := range it.Values() {
		for i := 0; i < len(f); i++ {
			for j := i + 1; j <= len(f); j++ {
				sub := f[i:j]
				if strings.TrimSpace(sub) == "" {
					continue
				}
				for _, s := range []string{sub, strings.ToUpper(sub), strings.ToLower(sub)} {
					got := Filter([]model.InventoryItem{it}, s)
					assert.Equal(t, []model.InventoryItem{it}, got, fmt.Sprintf("query %q", s))
				}
			}
		}
	}
	assert.Empty(t, Filter([]model.InventoryItem{it}, "laptop"))
}

func TestAggregateCounts(t *testing.T) {
	c := AggregateCounts(sample())
	assert.Equal(t, Counts{Total: 5, InUse: 2, Available: 1, Retired: 1}, c)
	assert.Equal(t, 1, c.Unknown())

	// нормализация статуса: пробелы и регистр
	c = AggregateCounts([]model.InventoryItem{
		item("1", "a", "", "", "  in use ", ""),
		item("2", "b", "", "", "AVAILABLE", ""),
		item("3", "c", "", "", "Retired\t", ""),
		item("4", "d", "", "", "", ""),
	})
	assert.Equal(t, Counts{Total: 4, InUse: 1, Available: 1, Retired: 1}, c)

	assert.Equal(t, Counts{}, AggregateCounts(nil))
}

func TestAggregateCounts_Invariants(t *testing.T) {
	statuses := []string{"In Use", "Available", "Retired", "Broken", "", "in use "}
	var items []model.InventoryItem
	for n := 0; n < 30; n++ {
		items = append(items, item(fmt.Sprint(n), "d", "", "", statuses[n%len(statuses)], ""))
		c := AggregateCounts(items)
		assert.Equal(t, len(items), c.Total)
		assert.LessOrEqual(t, c.InUse+c.Available+c.Retired, c.Total)
		assert.GreaterOrEqual(t, c.Unknown(), 0)
	}
}

func TestBucketOf(t *testing.T) {
	assert.Equal(t, BucketInUse, BucketOf(" In Use"))
	assert.Equal(t, BucketAvailable, BucketOf("available"))
	assert.Equal(t, BucketRetired, BucketOf("RETIRED"))
	assert.Equal(t, BucketUnknown, BucketOf("Broken"))
	assert.Equal(t, "unknown", BucketUnknown.String())
	assert.Equal(t, "in use", BucketInUse.String())
}
