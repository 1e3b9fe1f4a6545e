package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
)

const homeCourseLimit = 6

type courseRepository interface {
	Accepted(ctx context.Context, limit int64) ([]models.Course, error)
	ByInstructor(ctx context.Context, email string) ([]models.Course, error)
	Insert(ctx context.Context, course *models.Course) (*mongo.InsertOneResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (*mongo.UpdateResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error)
	SetAvailableSeats(ctx context.Context, id primitive.ObjectID, seats int) (*mongo.UpdateResult, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, course *models.Course) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// AddCourseRequest is the payload an instructor posts to offer a course.
type AddCourseRequest struct {
	ClassName       string  `json:"class_name" validate:"required"`
	ClassImage      string  `json:"class_image"`
	InstructorName  string  `json:"instructor_name" validate:"required"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	AvailableSeats  int     `json:"available_seats" validate:"gte=0"`
	Price           float64 `json:"course_price" validate:"gte=0"`
}

// UpdateCourseRequest replaces the instructor-editable course fields.
type UpdateCourseRequest struct {
	ClassName      string  `json:"class_name" validate:"required"`
	ClassImage     string  `json:"class_image"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	Price          float64 `json:"course_price" validate:"gte=0"`
}

// FeedbackRequest carries the admin's moderation note.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// SeatDecrementRequest carries the seat count supplied by the caller.
// The stored value is NOT re-read; the decrement trusts this number.
type SeatDecrementRequest struct {
	AvailableSeats int `json:"available_seats" validate:"required,gt=0"`
}

// CourseService handles course offering, moderation and listing.
type CourseService struct {
	repo      courseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService creates an instance of CourseService.
func NewCourseService(repo courseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Add inserts a new course. The moderation status is forced to pending no
// matter what the payload carried.
func (s *CourseService) Add(ctx context.Context, req AddCourseRequest) (*mongo.InsertOneResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	course := &models.Course{
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
		Status:          models.CoursePending,
		ViewStatus:      models.ViewUnseen,
	}

	result, err := s.repo.Insert(ctx, course)
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("course added", zap.String("class_name", course.ClassName), zap.String("instructor", course.InstructorEmail))
	return result, nil
}

// HomeCourses returns the capped accepted-course list for the landing page.
// Pending and rejected courses never appear here.
func (s *CourseService) HomeCourses(ctx context.Context) ([]models.Course, error) {
	const key = "courses:home"
	var cached []models.Course
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	courses, err := s.repo.Accepted(ctx, homeCourseLimit)
	if err != nil {
		return nil, storeError(err)
	}
	_ = s.cache.Set(ctx, key, courses, 0)
	return courses, nil
}

// AllCourses returns every accepted course.
func (s *CourseService) AllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.Accepted(ctx, 0)
	if err != nil {
		return nil, storeError(err)
	}
	return courses, nil
}

// MyCourses returns an instructor's own courses in every moderation state.
func (s *CourseService) MyCourses(ctx context.Context, email string) ([]models.Course, error) {
	courses, err := s.repo.ByInstructor(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	return courses, nil
}

// Moderate sets the course status to accepted or rejected regardless of the
// current value. A later call may overwrite an earlier decision.
func (s *CourseService) Moderate(ctx context.Context, rawID string, status models.CourseStatus) (*mongo.UpdateResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, storeError(err)
	}

	s.invalidateListings(ctx)
	s.logger.Info("course moderated", zap.String("course_id", rawID), zap.String("status", string(status)))
	return result, nil
}

// SetFeedback records the admin's note on a course.
func (s *CourseService) SetFeedback(ctx context.Context, rawID string, req FeedbackRequest) (*mongo.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.SetFeedback(ctx, id, req.Feedback)
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// Update replaces the instructor-editable fields of a course.
func (s *CourseService) Update(ctx context.Context, rawID string, req UpdateCourseRequest) (*mongo.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		ClassName:      req.ClassName,
		ClassImage:     req.ClassImage,
		AvailableSeats: req.AvailableSeats,
		Price:          req.Price,
	}
	result, err := s.repo.UpdateDetails(ctx, id, course)
	if err != nil {
		return nil, storeError(err)
	}

	s.invalidateListings(ctx)
	return result, nil
}

// DecrementSeat writes back the caller-supplied seat count minus one.
// The count is client-trusted; the only guard is that the stored value
// cannot go negative.
func (s *CourseService) DecrementSeat(ctx context.Context, rawID string, req SeatDecrementRequest) (*mongo.UpdateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}
	if req.AvailableSeats-1 < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "available_seats would go negative")
	}

	result, err := s.repo.SetAvailableSeats(ctx, id, req.AvailableSeats-1)
	if err != nil {
		return nil, storeError(err)
	}

	s.invalidateListings(ctx)
	return result, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, rawID string) (*mongo.DeleteResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	s.invalidateListings(ctx)
	return result, nil
}

func (s *CourseService) invalidateListings(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, "courses:*")
	_ = s.cache.Invalidate(ctx, "dashboard:*")
}
