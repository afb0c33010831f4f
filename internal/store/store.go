// Package store implements a thin adapter over a document database,
// exposing collection-level insert and find operations. Validation is
// the caller's responsibility; no schema is enforced here.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ErrNotFound is returned by FindOne when no document matches the filter
var ErrNotFound = errors.New("document not found")

const connectTimeout = 10 * time.Second

// Store owns the connection to the document database.
// It is safe for concurrent use by multiple in-flight requests.
// Every operation is a single round trip; no retries, no caching.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Connect opens a client for the given connection string and verifies
// connectivity with a ping
func Connect(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// Client exposes the underlying client, used for running migrations
func (s *Store) Client() *mongo.Client {
	return s.client
}

// Name returns the database name
func (s *Store) Name() string {
	return s.db.Name()
}

// Close disconnects from the store
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert stores a document in the named collection and returns the
// assigned id as a hex string
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		s.logger.Error("failed to insert document",
			zap.String("collection", collection), zap.Error(err))
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// FindAll retrieves every document in the named collection in the store's
// natural order. results must be a pointer to a slice.
func (s *Store) FindAll(ctx context.Context, collection string, results any) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("failed to query collection",
			zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("failed to query collection: %w", err)
	}

	if err := cursor.All(ctx, results); err != nil {
		s.logger.Error("failed to decode documents",
			zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("failed to decode documents: %w", err)
	}

	return nil
}

// FindOne retrieves the first document matching an equality filter,
// or ErrNotFound if none matches
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, result any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		s.logger.Error("failed to query document",
			zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("failed to query document: %w", err)
	}

	return nil
}

// FindMany retrieves up to limit documents matching an equality filter.
// results must be a pointer to a slice.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, results any) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		s.logger.Error("failed to query collection",
			zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("failed to query collection: %w", err)
	}

	if err := cursor.All(ctx, results); err != nil {
		s.logger.Error("failed to decode documents",
			zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("failed to decode documents: %w", err)
	}

	return nil
}

// Ping verifies store connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists up to max collection names present in the database
func (s *Store) CollectionNames(ctx context.Context, max int) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}
