package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	"github.com/campora/scs-api/internal/service"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := s.users[email]; ok {
		copy := *user
		return &copy, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Instructors(ctx context.Context, limit int64) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Insert(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	if s.users == nil {
		s.users = make(map[string]*models.User)
	}
	copy := *user
	copy.ID = primitive.NewObjectID()
	s.users[user.Email] = &copy
	return &mongo.InsertOneResult{InsertedID: copy.ID}, nil
}

func (s *stubUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func newUserRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewUserService(repo, nil, validator.New(), zap.NewNop())
	h := NewUserHandler(svc)

	r := gin.New()
	r.POST("/login-user", h.Login)
	r.PATCH("/manage-user/update-role-admin/:userId", h.MakeAdmin)
	return r
}

func TestLoginEndpointRegistersThenRecognises(t *testing.T) {
	repo := &stubUserRepo{}
	router := newUserRouter(repo)
	payload := `{"name":"Ana","email":"ana@example.com"}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/login-user", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/login-user", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, second.Code)

	var body struct {
		Data struct {
			Message string       `json:"message"`
			User    *models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "user already exists", body.Data.Message)
	require.NotNil(t, body.Data.User)
	assert.Equal(t, "ana@example.com", body.Data.User.Email)
}

func TestLoginEndpointRejectsBadPayload(t *testing.T) {
	router := newUserRouter(&stubUserRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login-user", strings.NewReader(`{"name":"Ana"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMakeAdminRejectsMalformedID(t *testing.T) {
	router := newUserRouter(&stubUserRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/manage-user/update-role-admin/not-hex", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_IDENTIFIER", body.Error.Code)
}
