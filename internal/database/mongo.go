package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionPersonalData = "personal_data"
	CollectionNotes        = "notes"
)

// Mongo wraps an explicitly constructed client so callers receive the
// database handle through injection instead of a package global.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	fmt.Println("Connected to MongoDB successfully")
	return &Mongo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// EnsureCollections creates the collections the app relies on if they do
// not exist yet.
func (m *Mongo) EnsureCollections(ctx context.Context) error {
	existing, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	present := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		present[name] = struct{}{}
	}

	for _, name := range []string{CollectionPersonalData, CollectionNotes} {
		if _, ok := present[name]; ok {
			continue
		}
		if err := m.db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
