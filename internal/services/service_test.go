package services

import (
	"context"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockStore is a mock implementation of DocumentStore and HealthStore
type mockStore struct {
	chapters       []models.Chapter
	questions      []models.QuizQuestion
	findOneErr     error
	findErr        error
	insertErr      error
	pingErr        error
	collections    []string
	collectionsErr error
	dbName         string

	inserted []any
	gotLimit int64
	gotMax   int
}

func (m *mockStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	m.inserted = append(m.inserted, doc)
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockStore) FindAll(ctx context.Context, collection string, results any) error {
	if m.findErr != nil {
		return m.findErr
	}
	switch out := results.(type) {
	case *[]models.Chapter:
		*out = m.chapters
	case *[]models.QuizQuestion:
		*out = m.questions
	}
	return nil
}

func (m *mockStore) FindOne(ctx context.Context, collection string, filter bson.M, result any) error {
	if m.findOneErr != nil {
		return m.findOneErr
	}
	if out, ok := result.(*models.Chapter); ok {
		if len(m.chapters) == 0 {
			return store.ErrNotFound
		}
		*out = m.chapters[0]
	}
	return nil
}

func (m *mockStore) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, results any) error {
	m.gotLimit = limit
	if m.findErr != nil {
		return m.findErr
	}
	if out, ok := results.(*[]models.QuizQuestion); ok {
		questions := m.questions
		if int64(len(questions)) > limit {
			questions = questions[:limit]
		}
		*out = questions
	}
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockStore) CollectionNames(ctx context.Context, max int) ([]string, error) {
	m.gotMax = max
	if m.collectionsErr != nil {
		return nil, m.collectionsErr
	}
	names := m.collections
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (m *mockStore) Name() string {
	return m.dbName
}
