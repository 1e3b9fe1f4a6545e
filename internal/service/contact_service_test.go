package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
)

type mockContactRepo struct {
	messages []*models.ContactMessage
	seen     []primitive.ObjectID
	deleted  []primitive.ObjectID
}

func (m *mockContactRepo) Insert(ctx context.Context, message *models.ContactMessage) (*mongo.InsertOneResult, error) {
	copy := *message
	copy.ID = primitive.NewObjectID()
	m.messages = append(m.messages, &copy)
	return &mongo.InsertOneResult{InsertedID: copy.ID}, nil
}

func (m *mockContactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	for _, msg := range m.messages {
		out = append(out, *msg)
	}
	return out, nil
}

func (m *mockContactRepo) MarkSeen(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	m.seen = append(m.seen, id)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.deleted = append(m.deleted, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func TestContactCreateForcesUnseen(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, validator.New(), zap.NewNop())
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, err := svc.Create(context.Background(), ContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "When does registration open?",
	})
	require.NoError(t, err)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, models.ViewUnseen, repo.messages[0].Status)
	assert.Equal(t, fixed, repo.messages[0].CreatedAt)
}

func TestContactCreateRequiresMessage(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), ContactRequest{Name: "Ana", Email: "ana@example.com"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestMarkSeenTransition(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	result, err := svc.MarkSeen(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.ModifiedCount)
	assert.Equal(t, []primitive.ObjectID{id}, repo.seen)

	_, err = svc.MarkSeen(context.Background(), "oops")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}

func TestContactDelete(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	result, err := svc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.DeletedCount)
	assert.Equal(t, []primitive.ObjectID{id}, repo.deleted)
}
