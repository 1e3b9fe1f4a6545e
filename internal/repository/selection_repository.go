package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campora/scs-api/internal/models"
)

// SelectionRepository provides document-store access for checkout selections.
type SelectionRepository struct {
	collection *mongo.Collection
}

// NewSelectionRepository creates a new instance of SelectionRepository.
func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{collection: db.Collection("selected_courses")}
}

// Insert stores a new selection document.
func (r *SelectionRepository) Insert(ctx context.Context, selection *models.SelectedCourse) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, selection)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	return result, nil
}

// ByUserEmail returns every selection belonging to the given student.
func (r *SelectionRepository) ByUserEmail(ctx context.Context, email string) ([]models.SelectedCourse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_email": email})
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	var selections []models.SelectedCourse
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	return selections, nil
}

// Delete removes the selection document with the given id.
func (r *SelectionRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete selection: %w", err)
	}
	return result, nil
}

// CountByUserEmail returns how many selections the given student holds.
func (r *SelectionRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_email": email})
	if err != nil {
		return 0, fmt.Errorf("count selections: %w", err)
	}
	return count, nil
}
