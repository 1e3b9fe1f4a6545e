package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
)

const homeInstructorLimit = 4

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Instructors(ctx context.Context, limit int64) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// LoginRequest is the profile payload posted on every login.
type LoginRequest struct {
	Name   string            `json:"name" validate:"required"`
	Email  string            `json:"email" validate:"required,email"`
	Photo  string            `json:"photo"`
	Role   models.UserRole   `json:"role" validate:"omitempty,oneof=student instructor admin"`
	Status models.ViewStatus `json:"status" validate:"omitempty,oneof=seen unseen"`
}

// LoginResult carries either the existing user or the raw insert result.
type LoginResult struct {
	Message  string                 `json:"message,omitempty"`
	User     *models.User           `json:"user,omitempty"`
	Inserted *mongo.InsertOneResult `json:"inserted,omitempty"`
}

// UserService handles account registration and administration.
type UserService struct {
	repo      userRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// LoginOrRegister looks up the account by email and registers it on first
// login. An existing account is returned untouched, so repeated logins
// never create duplicates.
func (s *UserService) LoginOrRegister(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return &LoginResult{Message: "user already exists", User: existing}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, storeError(err)
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Role:   req.Role,
		Status: req.Status,
	}
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if user.Status == "" {
		user.Status = models.ViewUnseen
	}

	result, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("user registered", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return &LoginResult{Inserted: result}, nil
}

// List returns every account for the manage-user screen.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// HomeInstructors returns the capped instructor list for the landing page.
func (s *UserService) HomeInstructors(ctx context.Context) ([]models.User, error) {
	const key = "instructors:home"
	var cached []models.User
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	users, err := s.repo.Instructors(ctx, homeInstructorLimit)
	if err != nil {
		return nil, storeError(err)
	}
	_ = s.cache.Set(ctx, key, users, 0)
	return users, nil
}

// AllInstructors returns the full instructor roster.
func (s *UserService) AllInstructors(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.Instructors(ctx, 0)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// AssignRole overwrites the role for the given id, unconditionally.
// Assigning a role the account already holds succeeds without change.
func (s *UserService) AssignRole(ctx context.Context, rawID string, role models.UserRole) (*mongo.UpdateResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, storeError(err)
	}

	s.cache.Invalidate(ctx, "instructors:*")
	s.cache.Invalidate(ctx, "dashboard:*")
	s.logger.Info("role assigned", zap.String("user_id", rawID), zap.String("role", string(role)))
	return result, nil
}

// Delete removes an account. Courses, selections and payments owned by it
// are left in place; there is no cascading delete.
func (s *UserService) Delete(ctx context.Context, rawID string) (*mongo.DeleteResult, error) {
	id, err := parseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	s.cache.Invalidate(ctx, "instructors:*")
	s.cache.Invalidate(ctx, "dashboard:*")
	return result, nil
}
