package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campora/scs-api/internal/models"
)

// ContactRepository provides document-store access for contact messages.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: db.Collection("contact_messages")}
}

// Insert stores a new contact message.
func (r *ContactRepository) Insert(ctx context.Context, message *models.ContactMessage) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return result, nil
}

// List returns every contact message, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}
	return messages, nil
}

// MarkSeen flips the message status to seen. Upsert keeps the legacy
// update-or-insert contract.
func (r *ContactRepository) MarkSeen(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.ViewSeen}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("mark contact message seen: %w", err)
	}
	return result, nil
}

// Delete removes the contact message with the given id.
func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete contact message: %w", err)
	}
	return result, nil
}

// CountUnseen returns the number of messages not yet viewed by an admin.
func (r *ContactRepository) CountUnseen(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.ViewUnseen})
	if err != nil {
		return 0, fmt.Errorf("count unseen contact messages: %w", err)
	}
	return count, nil
}
