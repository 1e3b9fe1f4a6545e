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

// CourseRepository provides document-store access for courses.
type CourseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

// Accepted returns approved courses sorted by class_name descending.
// A non-positive limit returns the full list.
func (r *CourseRepository) Accepted(ctx context.Context, limit int64) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "class_name", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"status": models.CourseAccepted}, opts)
	if err != nil {
		return nil, fmt.Errorf("list accepted courses: %w", err)
	}
	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

// ByInstructor returns every course owned by the given instructor email,
// regardless of moderation status.
func (r *CourseRepository) ByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"instructor_email": email})
	if err != nil {
		return nil, fmt.Errorf("list courses by instructor: %w", err)
	}
	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

// Insert stores a new course document.
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return result, nil
}

// SetStatus overwrites the moderation status for the given id, independent
// of the current value. Upsert keeps the legacy update-or-insert contract.
func (r *CourseRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("set course status: %w", err)
	}
	return result, nil
}

// SetFeedback overwrites the admin feedback text for the given id.
func (r *CourseRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"feedback": feedback}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("set course feedback: %w", err)
	}
	return result, nil
}

// SetAvailableSeats overwrites the seat count for the given id.
func (r *CourseRepository) SetAvailableSeats(ctx context.Context, id primitive.ObjectID, seats int) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"available_seats": seats}},
	)
	if err != nil {
		return nil, fmt.Errorf("set available seats: %w", err)
	}
	return result, nil
}

// UpdateDetails replaces the instructor-editable fields of a course.
func (r *CourseRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, course *models.Course) (*mongo.UpdateResult, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"class_name":      course.ClassName,
			"class_image":     course.ClassImage,
			"available_seats": course.AvailableSeats,
			"course_price":    course.Price,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update course details: %w", err)
	}
	return result, nil
}

// Delete removes the course document with the given id.
func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete course: %w", err)
	}
	return result, nil
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of courses in the given moderation state.
func (r *CourseRepository) CountByStatus(ctx context.Context, status models.CourseStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count courses by status: %w", err)
	}
	return count, nil
}

// CountByInstructorAndStatus returns the instructor's course count in one
// moderation state. An empty status counts all of their courses.
func (r *CourseRepository) CountByInstructorAndStatus(ctx context.Context, email string, status models.CourseStatus) (int64, error) {
	filter := bson.M{"instructor_email": email}
	if status != "" {
		filter["status"] = status
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count courses by instructor: %w", err)
	}
	return count, nil
}
