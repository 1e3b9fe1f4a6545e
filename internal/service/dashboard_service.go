package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campora/scs-api/internal/models"
)

type userCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
}

type courseCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.CourseStatus) (int64, error)
	CountByInstructorAndStatus(ctx context.Context, email string, status models.CourseStatus) (int64, error)
}

type paymentReader interface {
	Count(ctx context.Context) (int64, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)
	CountByInstructorEmail(ctx context.Context, email string) (int64, error)
	All(ctx context.Context) ([]models.Payment, error)
	ByInstructorEmail(ctx context.Context, email string) ([]models.Payment, error)
	ByUserEmail(ctx context.Context, email string, newestFirst bool) ([]models.Payment, error)
}

type selectionCounter interface {
	CountByUserEmail(ctx context.Context, email string) (int64, error)
}

type contactCounter interface {
	CountUnseen(ctx context.Context) (int64, error)
}

// DashboardService composes role-specific statistics from independent
// per-filter reads. There is deliberately no single aggregate query, so
// every figure can be checked against its direct counterpart.
type DashboardService struct {
	users      userCounter
	courses    courseCounter
	payments   paymentReader
	selections selectionCounter
	contacts   contactCounter
	cache      *CacheService
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Users      userCounter
	Courses    courseCounter
	Payments   paymentReader
	Selections selectionCounter
	Contacts   contactCounter
	Cache      *CacheService
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		users:      params.Users,
		courses:    params.Courses,
		payments:   params.Payments,
		selections: params.Selections,
		contacts:   params.Contacts,
		cache:      params.Cache,
		cacheTTL:   params.CacheTTL,
		logger:     logger,
	}
}

// AdminStats returns the platform-wide dashboard figures.
func (s *DashboardService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	const key = "dashboard:admin"
	var cached models.AdminStats
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	stats := &models.AdminStats{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, storeError(err)
	}
	if stats.Students, err = s.users.CountByRole(ctx, models.RoleStudent); err != nil {
		return nil, storeError(err)
	}
	if stats.Instructors, err = s.users.CountByRole(ctx, models.RoleInstructor); err != nil {
		return nil, storeError(err)
	}
	if stats.Admins, err = s.users.CountByRole(ctx, models.RoleAdmin); err != nil {
		return nil, storeError(err)
	}

	if stats.TotalCourses, err = s.courses.Count(ctx); err != nil {
		return nil, storeError(err)
	}
	if stats.PendingCourses, err = s.courses.CountByStatus(ctx, models.CoursePending); err != nil {
		return nil, storeError(err)
	}
	if stats.AcceptedCourses, err = s.courses.CountByStatus(ctx, models.CourseAccepted); err != nil {
		return nil, storeError(err)
	}
	if stats.RejectedCourses, err = s.courses.CountByStatus(ctx, models.CourseRejected); err != nil {
		return nil, storeError(err)
	}

	if stats.TotalEnrollments, err = s.payments.Count(ctx); err != nil {
		return nil, storeError(err)
	}
	payments, err := s.payments.All(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	for _, p := range payments {
		stats.TotalRevenue += p.Amount
	}

	if stats.UnseenMessages, err = s.contacts.CountUnseen(ctx); err != nil {
		return nil, storeError(err)
	}

	_ = s.cache.Set(ctx, key, stats, s.cacheTTL)
	return stats, nil
}

// InstructorStats returns one instructor's dashboard figures.
func (s *DashboardService) InstructorStats(ctx context.Context, email string) (*models.InstructorStats, error) {
	key := "dashboard:instructor:" + email
	var cached models.InstructorStats
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	stats := &models.InstructorStats{}

	var err error
	if stats.TotalCourses, err = s.courses.CountByInstructorAndStatus(ctx, email, ""); err != nil {
		return nil, storeError(err)
	}
	if stats.AcceptedCourses, err = s.courses.CountByInstructorAndStatus(ctx, email, models.CourseAccepted); err != nil {
		return nil, storeError(err)
	}
	if stats.PendingCourses, err = s.courses.CountByInstructorAndStatus(ctx, email, models.CoursePending); err != nil {
		return nil, storeError(err)
	}
	if stats.RejectedCourses, err = s.courses.CountByInstructorAndStatus(ctx, email, models.CourseRejected); err != nil {
		return nil, storeError(err)
	}

	if stats.TotalEnrollments, err = s.payments.CountByInstructorEmail(ctx, email); err != nil {
		return nil, storeError(err)
	}
	payments, err := s.payments.ByInstructorEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	for _, p := range payments {
		stats.TotalRevenue += p.Amount
	}

	_ = s.cache.Set(ctx, key, stats, s.cacheTTL)
	return stats, nil
}

// StudentStats returns one student's dashboard figures.
func (s *DashboardService) StudentStats(ctx context.Context, email string) (*models.StudentStats, error) {
	stats := &models.StudentStats{}

	var err error
	if stats.SelectedCourses, err = s.selections.CountByUserEmail(ctx, email); err != nil {
		return nil, storeError(err)
	}

	if stats.EnrolledCourses, err = s.payments.CountByUserEmail(ctx, email); err != nil {
		return nil, storeError(err)
	}
	payments, err := s.payments.ByUserEmail(ctx, email, false)
	if err != nil {
		return nil, storeError(err)
	}
	for _, p := range payments {
		stats.TotalSpent += p.Amount
	}

	return stats, nil
}
