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

type mockCourseRepo struct {
	inserted      []*models.Course
	acceptedLimit int64
	statusWrites  map[primitive.ObjectID]models.CourseStatus
	seatWrites    map[primitive.ObjectID]int
	feedback      map[primitive.ObjectID]string
}

func (m *mockCourseRepo) Accepted(ctx context.Context, limit int64) ([]models.Course, error) {
	m.acceptedLimit = limit
	var out []models.Course
	for _, c := range m.inserted {
		if c.Status == models.CourseAccepted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) ByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.inserted {
		if c.InstructorEmail == email {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Insert(ctx context.Context, course *models.Course) (*mongo.InsertOneResult, error) {
	copy := *course
	copy.ID = primitive.NewObjectID()
	m.inserted = append(m.inserted, &copy)
	return &mongo.InsertOneResult{InsertedID: copy.ID}, nil
}

func (m *mockCourseRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) (*mongo.UpdateResult, error) {
	if m.statusWrites == nil {
		m.statusWrites = make(map[primitive.ObjectID]models.CourseStatus)
	}
	m.statusWrites[id] = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCourseRepo) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*mongo.UpdateResult, error) {
	if m.feedback == nil {
		m.feedback = make(map[primitive.ObjectID]string)
	}
	m.feedback[id] = feedback
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCourseRepo) SetAvailableSeats(ctx context.Context, id primitive.ObjectID, seats int) (*mongo.UpdateResult, error) {
	if m.seatWrites == nil {
		m.seatWrites = make(map[primitive.ObjectID]int)
	}
	m.seatWrites[id] = seats
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCourseRepo) UpdateDetails(ctx context.Context, id primitive.ObjectID, course *models.Course) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func TestAddCourseForcesPending(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.Add(context.Background(), AddCourseRequest{
		ClassName:       "Archery",
		InstructorName:  "Ana",
		InstructorEmail: "ana@example.com",
		AvailableSeats:  12,
		Price:           49.5,
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, models.CoursePending, repo.inserted[0].Status)
	assert.Equal(t, models.ViewUnseen, repo.inserted[0].ViewStatus)
}

func TestHomeCoursesUsesCap(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.HomeCourses(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 6, repo.acceptedLimit)

	_, err = svc.AllCourses(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, repo.acceptedLimit)
}

func TestModerateOverwritesEarlierDecision(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	_, err := svc.Moderate(context.Background(), id.Hex(), models.CourseAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.CourseAccepted, repo.statusWrites[id])

	_, err = svc.Moderate(context.Background(), id.Hex(), models.CourseRejected)
	require.NoError(t, err)
	assert.Equal(t, models.CourseRejected, repo.statusWrites[id])
}

func TestModerateRejectsMalformedID(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, nil, validator.New(), zap.NewNop())

	_, err := svc.Moderate(context.Background(), "nope", models.CourseAccepted)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}

func TestDecrementSeatTrustsClientCount(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	// caller says 10 seats remain, so 9 is written back without a re-read
	_, err := svc.DecrementSeat(context.Background(), id.Hex(), SeatDecrementRequest{AvailableSeats: 10})
	require.NoError(t, err)
	assert.Equal(t, 9, repo.seatWrites[id])
}

func TestDecrementSeatRejectsExhaustedCount(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	_, err := svc.DecrementSeat(context.Background(), id.Hex(), SeatDecrementRequest{AvailableSeats: 0})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.seatWrites)
}

func TestSetFeedbackRequiresText(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, validator.New(), zap.NewNop())
	id := primitive.NewObjectID()

	_, err := svc.SetFeedback(context.Background(), id.Hex(), FeedbackRequest{})
	require.Error(t, err)

	_, err = svc.SetFeedback(context.Background(), id.Hex(), FeedbackRequest{Feedback: "needs a syllabus"})
	require.NoError(t, err)
	assert.Equal(t, "needs a syllabus", repo.feedback[id])
}
