package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
)

type mockUserRepo struct {
	users           map[string]*models.User
	instructorLimit int64
	roleWrites      map[primitive.ObjectID]models.UserRole
	insertCount     int
	findErr         error
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if user, ok := m.users[email]; ok {
		copy := *user
		return &copy, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserRepo) Instructors(ctx context.Context, limit int64) ([]models.User, error) {
	m.instructorLimit = limit
	var users []models.User
	for _, u := range m.users {
		if u.Role == models.RoleInstructor {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *mockUserRepo) Insert(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	if m.users == nil {
		m.users = make(map[string]*models.User)
	}
	copy := *user
	copy.ID = primitive.NewObjectID()
	m.users[user.Email] = &copy
	m.insertCount++
	return &mongo.InsertOneResult{InsertedID: copy.ID}, nil
}

func (m *mockUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*mongo.UpdateResult, error) {
	if m.roleWrites == nil {
		m.roleWrites = make(map[primitive.ObjectID]models.UserRole)
	}
	m.roleWrites[id] = role
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func TestLoginOrRegisterNewUserDefaults(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, validator.New(), zap.NewNop())

	result, err := svc.LoginOrRegister(context.Background(), LoginRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotNil(t, result.Inserted)
	assert.Nil(t, result.User)

	stored := repo.users["ana@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleStudent, stored.Role)
	assert.Equal(t, models.ViewUnseen, stored.Status)
}

func TestLoginOrRegisterIsIdempotent(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, validator.New(), zap.NewNop())
	req := LoginRequest{Name: "Ana", Email: "ana@example.com"}

	_, err := svc.LoginOrRegister(context.Background(), req)
	require.NoError(t, err)

	result, err := svc.LoginOrRegister(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "user already exists", result.Message)
	require.NotNil(t, result.User)
	assert.Equal(t, "ana@example.com", result.User.Email)
	assert.Nil(t, result.Inserted)
	assert.Equal(t, 1, repo.insertCount)
}

func TestLoginOrRegisterRejectsBadEmail(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, nil, validator.New(), zap.NewNop())

	_, err := svc.LoginOrRegister(context.Background(), LoginRequest{Name: "Ana", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAssignRoleOverwrites(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	result, err := svc.AssignRole(context.Background(), id.Hex(), models.RoleInstructor)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.ModifiedCount)
	assert.Equal(t, models.RoleInstructor, repo.roleWrites[id])

	// assigning again, even the same role, is a plain overwrite
	_, err = svc.AssignRole(context.Background(), id.Hex(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, repo.roleWrites[id])
}

func TestAssignRoleRejectsMalformedID(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.AssignRole(context.Background(), "not-a-hex-id", models.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.roleWrites)
}

func TestHomeInstructorsUsesCap(t *testing.T) {
	repo := &mockUserRepo{users: map[string]*models.User{
		"i@example.com": {Email: "i@example.com", Role: models.RoleInstructor},
	}}
	svc := NewUserService(repo, nil, validator.New(), zap.NewNop())

	users, err := svc.HomeInstructors(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.EqualValues(t, 4, repo.instructorLimit)

	_, err = svc.AllInstructors(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, repo.instructorLimit)
}

func TestUserDeleteRejectsMalformedID(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, nil, validator.New(), zap.NewNop())

	_, err := svc.Delete(context.Background(), "zzz")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}
