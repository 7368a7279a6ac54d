package mongo

import (
	"ITInventory/internal/model"
	"ITInventory/internal/repo"
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// openTestRepo подключается к MongoDB из MONGO_TEST_URI; без неё тесты пропускаются.
// Каждый тест работает в своей базе, которая удаляется по завершении.
func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI is not set")
	}
	repo.PasswordCost = bcrypt.MinCost
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	name := "itinventory_test_" + uuid.NewString()[:8]
	r, err := Open(ctx, uri, name)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.client.Database(name).Drop(context.Background())
		_ = r.Close()
	})
	return r
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := Open(ctx, "mongodb://127.0.0.1:1/", "x")
	assert.Error(t, err)
}

func TestListSort_BySeqThenID(t *testing.T) {
	require.Len(t, listSort, 2)
	assert.Equal(t, "seq", listSort[0].Key)
	assert.Equal(t, "_id", listSort[1].Key)
}

func TestObjectID_Invalid(t *testing.T) {
	_, err := objectID("12")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRepository_InventoryCRUD(t *testing.T) {
	r := openTestRepo(t)
	ctx := context.Background()

	a, err := r.InsertInventory(ctx, model.ItemFields{DeviceName: "a", Status: "In Use"})
	require.NoError(t, err)
	b, err := r.InsertInventory(ctx, model.ItemFields{DeviceName: "b", Status: "Available"})
	require.NoError(t, err)

	list, err := r.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	upd := a.ItemFields
	upd.Status = model.StatusRetired
	_, err = r.UpdateInventory(ctx, a.ID, upd)
	require.NoError(t, err)
	got, err := r.GetInventory(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRetired, got.Status)

	require.NoError(t, r.DeleteInventory(ctx, a.ID))
	assert.ErrorIs(t, r.DeleteInventory(ctx, a.ID), repo.ErrNotFound)
	_, err = r.UpdateInventory(ctx, a.ID, upd)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	n, err := r.CountInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRepository_ReconcileUsers(t *testing.T) {
	r := openTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, "intruder", "x")
	require.NoError(t, err)

	allow := []model.Credential{{Username: "admin", Password: "admin"}, {Username: "aziz taifour", Password: "aziz"}}
	require.NoError(t, r.ReconcileUsers(ctx, allow))
	require.NoError(t, r.ReconcileUsers(ctx, allow))

	users, err := r.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)

	u, err := r.FindUser(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.NotNil(t, u)
	u, err = r.FindUser(ctx, "admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

// ObjectID другого процесса может оказаться меньше, хотя запись вставлена позже;
// порядок задаёт seq.
func TestRepository_ListInventory_OrderIndependentOfObjectID(t *testing.T) {
	r := openTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	early := primitive.NewObjectIDFromTimestamp(now)
	late := primitive.NewObjectIDFromTimestamp(now.Add(time.Hour))
	_, err := r.inventory.InsertOne(ctx, inventoryDoc{ID: late, DeviceName: "first", Status: "In Use", Seq: 1})
	require.NoError(t, err)
	_, err = r.inventory.InsertOne(ctx, inventoryDoc{ID: early, DeviceName: "second", Status: "In Use", Seq: 2})
	require.NoError(t, err)
	_, err = r.counters.InsertOne(ctx, bson.M{"_id": inventorySeqID, "seq": int64(2)})
	require.NoError(t, err)

	third, err := r.InsertInventory(ctx, model.ItemFields{DeviceName: "third", Status: "Available"})
	require.NoError(t, err)

	list, err := r.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].DeviceName)
	assert.Equal(t, "second", list[1].DeviceName)
	assert.Equal(t, third.ID, list[2].ID)

	// правка не сбивает порядок
	_, err = r.UpdateInventory(ctx, late.Hex(), model.ItemFields{DeviceName: "first", Status: "Retired"})
	require.NoError(t, err)
	list, err = r.ListInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, late.Hex(), list[0].ID)
}
