package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
)

type contactRepository interface {
	Insert(ctx context.Context, message *models.ContactMessage) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkSeen(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactService handles the public contact inbox.
type ContactService struct {
	repo      contactRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewContactService creates an instance of ContactService.
func NewContactService(repo contactRepository, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ContactService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Create stores a new message. Status is forced to unseen so it shows up
// in the admin's unseen count.
func (s *ContactService) Create(ctx context.Context, req ContactRequest) (*mongo.InsertOneResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	message := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ViewUnseen,
		CreatedAt: s.now().UTC(),
	}

	result, err := s.repo.Insert(ctx, message)
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// List returns the inbox, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return messages, nil
}

// MarkSeen flips a message to seen, removing it from the unseen count.
func (s *ContactService) MarkSeen(ctx context.Context, rawID string) (*mongo.UpdateResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.MarkSeen(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// Delete removes a message from the inbox.
func (s *ContactService) Delete(ctx context.Context, rawID string) (*mongo.DeleteResult, error) {
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
