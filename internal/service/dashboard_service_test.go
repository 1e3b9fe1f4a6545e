package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
	appErrors "github.com/campora/scs-api/pkg/errors"
)

type statsFixture struct {
	roles      map[models.UserRole]int64
	statuses   map[models.CourseStatus]int64
	payments   []models.Payment
	selections map[string]int64
	unseen     int64
}

func (f *statsFixture) Count(ctx context.Context) (int64, error) {
	var total int64
	for _, n := range f.roles {
		total += n
	}
	return total, nil
}

func (f *statsFixture) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	return f.roles[role], nil
}

func (f *statsFixture) CountByStatus(ctx context.Context, status models.CourseStatus) (int64, error) {
	return f.statuses[status], nil
}

func (f *statsFixture) CountByInstructorAndStatus(ctx context.Context, email string, status models.CourseStatus) (int64, error) {
	return f.statuses[status], nil
}

func (f *statsFixture) All(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *statsFixture) ByInstructorEmail(ctx context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.InstructorEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *statsFixture) ByUserEmail(ctx context.Context, email string, newestFirst bool) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *statsFixture) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	return f.selections[email], nil
}

func (f *statsFixture) CountUnseen(ctx context.Context) (int64, error) {
	return f.unseen, nil
}

type courseCountAdapter struct{ *statsFixture }

func (a courseCountAdapter) Count(ctx context.Context) (int64, error) {
	var total int64
	for _, n := range a.statuses {
		total += n
	}
	return total, nil
}

type paymentCountAdapter struct{ *statsFixture }

func (a paymentCountAdapter) Count(ctx context.Context) (int64, error) {
	return int64(len(a.payments)), nil
}

func (a paymentCountAdapter) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	for _, p := range a.payments {
		if p.UserEmail == email {
			n++
		}
	}
	return n, nil
}

func (a paymentCountAdapter) CountByInstructorEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	for _, p := range a.payments {
		if p.InstructorEmail == email {
			n++
		}
	}
	return n, nil
}

func newStatsFixture() *statsFixture {
	return &statsFixture{
		roles:    map[models.UserRole]int64{models.RoleStudent: 5, models.RoleInstructor: 2, models.RoleAdmin: 1},
		statuses: map[models.CourseStatus]int64{models.CoursePending: 3, models.CourseAccepted: 4, models.CourseRejected: 1},
		payments: []models.Payment{
			{UserEmail: "ana@example.com", InstructorEmail: "bob@example.com", Amount: 49.5},
			{UserEmail: "ana@example.com", InstructorEmail: "eve@example.com", Amount: 19.99},
			{UserEmail: "cid@example.com", InstructorEmail: "bob@example.com", Amount: 30},
		},
		selections: map[string]int64{"ana@example.com": 2},
		unseen:     7,
	}
}

func newDashboardService(f *statsFixture) *DashboardService {
	f.statuses[""] = f.statuses[models.CoursePending] + f.statuses[models.CourseAccepted] + f.statuses[models.CourseRejected]
	return NewDashboardService(DashboardServiceParams{
		Users:      f,
		Courses:    courseCountAdapter{f},
		Payments:   paymentCountAdapter{f},
		Selections: f,
		Contacts:   f,
		Logger:     zap.NewNop(),
	})
}

func TestAdminStatsSumsEveryFigure(t *testing.T) {
	f := newStatsFixture()
	svc := newDashboardService(f)

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 8, stats.TotalUsers)
	assert.EqualValues(t, 5, stats.Students)
	assert.EqualValues(t, 2, stats.Instructors)
	assert.EqualValues(t, 1, stats.Admins)
	assert.EqualValues(t, 3, stats.PendingCourses)
	assert.EqualValues(t, 4, stats.AcceptedCourses)
	assert.EqualValues(t, 1, stats.RejectedCourses)
	assert.EqualValues(t, 3, stats.TotalEnrollments)
	assert.InDelta(t, 99.49, stats.TotalRevenue, 0.001)
	assert.EqualValues(t, 7, stats.UnseenMessages)
}

func TestInstructorStatsSumsOwnPayments(t *testing.T) {
	f := newStatsFixture()
	svc := newDashboardService(f)

	stats, err := svc.InstructorStats(context.Background(), "bob@example.com")
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalEnrollments)
	assert.InDelta(t, 79.5, stats.TotalRevenue, 0.001)
	assert.EqualValues(t, 4, stats.AcceptedCourses)
}

type ttlRecordingCacheRepo struct {
	ttls map[string]time.Duration
}

func (r *ttlRecordingCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return appErrors.ErrCacheMiss
}

func (r *ttlRecordingCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.ttls == nil {
		r.ttls = make(map[string]time.Duration)
	}
	r.ttls[key] = ttl
	return nil
}

func (r *ttlRecordingCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	return nil
}

func TestDashboardCacheUsesOwnTTL(t *testing.T) {
	f := newStatsFixture()
	f.statuses[""] = 8
	cacheRepo := &ttlRecordingCacheRepo{}
	cacheSvc := NewCacheService(cacheRepo, nil, 5*time.Minute, zap.NewNop(), true)

	svc := NewDashboardService(DashboardServiceParams{
		Users:      f,
		Courses:    courseCountAdapter{f},
		Payments:   paymentCountAdapter{f},
		Selections: f,
		Contacts:   f,
		Cache:      cacheSvc,
		CacheTTL:   2 * time.Minute,
		Logger:     zap.NewNop(),
	})

	_, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	_, err = svc.InstructorStats(context.Background(), "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cacheRepo.ttls["dashboard:admin"])
	assert.Equal(t, 2*time.Minute, cacheRepo.ttls["dashboard:instructor:bob@example.com"])
}

func TestStudentStatsSumsOwnSpending(t *testing.T) {
	f := newStatsFixture()
	svc := newDashboardService(f)

	stats, err := svc.StudentStats(context.Background(), "ana@example.com")
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.SelectedCourses)
	assert.EqualValues(t, 2, stats.EnrolledCourses)
	assert.InDelta(t, 69.49, stats.TotalSpent, 0.001)
}
