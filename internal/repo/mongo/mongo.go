// Package mongo реализует repo.Repository поверх MongoDB (коллекции users и inventory).
package mongo

import (
	"ITInventory/internal/model"
	"ITInventory/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultDatabase — имя базы по умолчанию.
const DefaultDatabase = "inventory_app"

// ServerSelectionTimeout ограничивает ожидание сервера при подключении.
const ServerSelectionTimeout = 5 * time.Second

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
}

type inventoryDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	DeviceName   string             `bson:"device_name"`
	SerialNumber string             `bson:"serial_number"`
	Location     string             `bson:"location"`
	Status       string             `bson:"status"`
	AssignedTo   string             `bson:"assigned_to"`
	Seq          int64              `bson:"seq"`
}

func (d inventoryDoc) toModel() model.InventoryItem {
	return model.InventoryItem{
		ID: d.ID.Hex(),
		ItemFields: model.ItemFields{
			DeviceName:   d.DeviceName,
			SerialNumber: d.SerialNumber,
			Location:     d.Location,
			Status:       d.Status,
			AssignedTo:   d.AssignedTo,
		},
	}
}

func fieldsDoc(f model.ItemFields) bson.M {
	return bson.M{
		"device_name":   f.DeviceName,
		"serial_number": f.SerialNumber,
		"location":      f.Location,
		"status":        f.Status,
		"assigned_to":   f.AssignedTo,
	}
}

// Repository — реализация repo.Repository для MongoDB.
type Repository struct {
	client    *mongo.Client
	users     *mongo.Collection
	inventory *mongo.Collection
	counters  *mongo.Collection
}

// inventorySeqID — ключ счётчика порядка вставки в коллекции counters.
const inventorySeqID = "inventory"

// listSort задаёт порядок вставки: по seq из счётчика, а не по _id —
// ObjectID разных процессов в пределах одной секунды упорядочены случайно.
// Записи без seq (созданные до появления счётчика) идут первыми, между собой по _id.
var listSort = bson.D{{Key: "seq", Value: 1}, {Key: "_id", Value: 1}}

// nextSeq атомарно увеличивает счётчик и возвращает новое значение.
func (r *Repository) nextSeq(ctx context.Context) (int64, error) {
	var c struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": inventorySeqID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next inventory seq: %w", err)
	}
	return c.Seq, nil
}

var _ repo.Repository = (*Repository)(nil)

// Open подключается к MongoDB по uri и проверяет соединение ping-ом.
func Open(ctx context.Context, uri, database string) (*Repository, error) {
	if database == "" {
		database = DefaultDatabase
	}
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(ServerSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(database)
	r := &Repository{
		client:    client,
		users:     db.Collection("users"),
		inventory: db.Collection("inventory"),
		counters:  db.Collection("counters"),
	}
	_, err = r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create users index: %w", err)
	}
	return r, nil
}

// Close отключает клиента.
func (r *Repository) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Disconnect(context.Background())
}

// objectID разбирает непрозрачный id; некорректный id считается несуществующим.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repo.ErrNotFound
	}
	return oid, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := r.users.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, model.User{ID: d.ID.Hex(), Username: d.Username, PasswordHash: d.PasswordHash})
	}
	return users, nil
}

func (r *Repository) FindUser(ctx context.Context, username, password string) (*model.User, error) {
	var d userDoc
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ok, err := repo.CheckPassword(d.PasswordHash, password)
	if err != nil || !ok {
		return nil, err
	}
	return &model.User{ID: d.ID.Hex(), Username: d.Username, PasswordHash: d.PasswordHash}, nil
}

func (r *Repository) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := repo.HashPassword(password)
	if err != nil {
		return nil, err
	}
	res, err := r.users.InsertOne(ctx, userDoc{Username: username, PasswordHash: hash})
	if err != nil {
		return nil, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return &model.User{ID: oid.Hex(), Username: username, PasswordHash: hash}, nil
}

func (r *Repository) SetPassword(ctx context.Context, username, password string) (bool, error) {
	hash, err := repo.HashPassword(password)
	if err != nil {
		return false, err
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// ReconcileUsers удаляет пользователей вне allow-list и добавляет недостающих.
// Без транзакции: одиночный сервер MongoDB их не поддерживает, а сама операция идемпотентна.
func (r *Repository) ReconcileUsers(ctx context.Context, allow []model.Credential) error {
	names := make([]string, 0, len(allow))
	seen := make(map[string]struct{}, len(allow))
	for _, c := range allow {
		if _, dup := seen[c.Username]; dup {
			continue
		}
		seen[c.Username] = struct{}{}
		names = append(names, c.Username)
	}
	if _, err := r.users.DeleteMany(ctx, bson.M{"username": bson.M{"$nin": names}}); err != nil {
		return fmt.Errorf("remove users: %w", err)
	}
	done := make(map[string]struct{}, len(allow))
	for _, c := range allow {
		if _, ok := done[c.Username]; ok {
			continue
		}
		done[c.Username] = struct{}{}
		n, err := r.users.CountDocuments(ctx, bson.M{"username": c.Username})
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if _, err := r.CreateUser(ctx, c.Username, c.Password); err != nil {
			return fmt.Errorf("add user %q: %w", c.Username, err)
		}
	}
	return nil
}

// ListInventory возвращает записи в порядке вставки (см. listSort).
func (r *Repository) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	cur, err := r.inventory.Find(ctx, bson.D{}, options.Find().SetSort(listSort))
	if err != nil {
		return nil, err
	}
	var docs []inventoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.InventoryItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *Repository) GetInventory(ctx context.Context, id string) (*model.InventoryItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d inventoryDoc
	err = r.inventory.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it := d.toModel()
	return &it, nil
}

func (r *Repository) InsertInventory(ctx context.Context, f model.ItemFields) (*model.InventoryItem, error) {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return nil, err
	}
	doc := fieldsDoc(f)
	doc["seq"] = seq
	res, err := r.inventory.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return &model.InventoryItem{ID: oid.Hex(), ItemFields: f}, nil
}

func (r *Repository) UpdateInventory(ctx context.Context, id string, f model.ItemFields) (*model.InventoryItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.inventory.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fieldsDoc(f)})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, repo.ErrNotFound
	}
	return &model.InventoryItem{ID: oid.Hex(), ItemFields: f}, nil
}

func (r *Repository) DeleteInventory(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.inventory.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *Repository) CountInventory(ctx context.Context) (int64, error) {
	return r.inventory.CountDocuments(ctx, bson.D{})
}
