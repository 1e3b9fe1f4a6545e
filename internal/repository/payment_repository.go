package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campora/scs-api/internal/models"
)

// PaymentRepository provides document-store access for payment records.
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

// Insert stores a new payment record.
func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return result, nil
}

// ByUserEmail returns payments for the given student. When newestFirst is
// set the result is sorted by payment date descending.
func (r *PaymentRepository) ByUserEmail(ctx context.Context, email string, newestFirst bool) ([]models.Payment, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}
	cursor, err := r.collection.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments by user: %w", err)
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// ByInstructorEmail returns payments for courses owned by the instructor.
func (r *PaymentRepository) ByInstructorEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"instructor_email": email})
	if err != nil {
		return nil, fmt.Errorf("list payments by instructor: %w", err)
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// All returns every payment record, newest first.
func (r *PaymentRepository) All(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// Count returns the total number of payment records.
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

// CountByUserEmail returns the number of payments made by the given student.
func (r *PaymentRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_email": email})
	if err != nil {
		return 0, fmt.Errorf("count payments by user: %w", err)
	}
	return count, nil
}

// CountByInstructorEmail returns the number of enrollments into the
// instructor's courses.
func (r *PaymentRepository) CountByInstructorEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"instructor_email": email})
	if err != nil {
		return 0, fmt.Errorf("count payments by instructor: %w", err)
	}
	return count, nil
}
