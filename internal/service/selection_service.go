package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
)

type selectionRepository interface {
	Insert(ctx context.Context, selection *models.SelectedCourse) (*mongo.InsertOneResult, error)
	ByUserEmail(ctx context.Context, email string) ([]models.SelectedCourse, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// SelectCourseRequest is the payload posted when a student picks a course
// for checkout.
type SelectCourseRequest struct {
	UserEmail       string  `json:"user_email" validate:"required,email"`
	CourseID        string  `json:"course_id" validate:"required"`
	ClassName       string  `json:"class_name" validate:"required"`
	ClassImage      string  `json:"class_image"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// SelectionService handles checkout selections.
type SelectionService struct {
	repo      selectionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSelectionService creates an instance of SelectionService.
func NewSelectionService(repo selectionRepository, validate *validator.Validate, logger *zap.Logger) *SelectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SelectionService{repo: repo, validator: validate, logger: logger}
}

// Select adds a course to the student's checkout selection. The referenced
// course id must be well formed; nothing else about it is verified.
func (s *SelectionService) Select(ctx context.Context, req SelectCourseRequest) (*mongo.InsertOneResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	courseID, err := parseObjectID(req.CourseID)
	if err != nil {
		return nil, err
	}

	selection := &models.SelectedCourse{
		UserEmail:       req.UserEmail,
		CourseID:        courseID,
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
	}

	result, err := s.repo.Insert(ctx, selection)
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// ListByStudent returns the student's current selections.
func (s *SelectionService) ListByStudent(ctx context.Context, email string) ([]models.SelectedCourse, error) {
	selections, err := s.repo.ByUserEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	return selections, nil
}

// Remove deletes a selection, either on manual removal or after checkout.
func (s *SelectionService) Remove(ctx context.Context, rawID string) (*mongo.DeleteResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}
