package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

// Mongo is a TemplateStore backed by a MongoDB collection holding one
// document per user, unique on user_id.
type Mongo struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// MongoOptions configures the Mongo store.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds every individual operation.
	Timeout time.Duration
}

// NewMongo creates a Mongo store. The driver connects lazily; call Ping to
// verify connectivity and EnsureIndexes before serving traffic.
func NewMongo(opts MongoOptions) (*Mongo, error) {
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI(opts.URI).SetTimeout(opts.Timeout))
	if err != nil {
		return nil, fmt.Errorf("store: connect mongo: %w", err)
	}
	coll := client.Database(opts.Database).Collection(opts.Collection)
	return &Mongo{client: client, coll: coll, timeout: opts.Timeout}, nil
}

// NewMongoCollection wraps an existing collection. Close is a no-op for
// stores built this way.
func NewMongoCollection(coll *mongo.Collection, timeout time.Duration) *Mongo {
	return &Mongo{coll: coll, timeout: timeout}
}

// Ping checks that the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique user_id index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("store: create user_id index: %w", err)
	}
	return nil
}

func (m *Mongo) Get(ctx context.Context, userID string) (*enrollment.Template, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var tpl enrollment.Template
	err := m.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find template: %w", err)
	}
	tpl.CreatedAt = tpl.CreatedAt.UTC()
	return &tpl, nil
}

// Save replaces the user's document in one round trip, inserting it when
// absent.
func (m *Mongo) Save(ctx context.Context, tpl *enrollment.Template) error {
	if tpl == nil || tpl.UserID == "" {
		return errInvalidTemplate
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"user_id": tpl.UserID},
		tpl,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store: replace template: %w", err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, userID string) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("store: delete template: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Close() error {
	if m.client == nil {
		return nil
	}
	ctx, cancel := m.withTimeout(context.Background())
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *Mongo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}
