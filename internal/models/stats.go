package models

// AdminStats aggregates platform-wide counts for the admin dashboard.
// Composed from independent per-filter reads, not a single query.
type AdminStats struct {
	TotalUsers       int64   `json:"total_users"`
	Students         int64   `json:"students"`
	Instructors      int64   `json:"instructors"`
	Admins           int64   `json:"admins"`
	TotalCourses     int64   `json:"total_courses"`
	PendingCourses   int64   `json:"pending_courses"`
	AcceptedCourses  int64   `json:"accepted_courses"`
	RejectedCourses  int64   `json:"rejected_courses"`
	TotalEnrollments int64   `json:"total_enrollments"`
	TotalRevenue     float64 `json:"total_revenue"`
	UnseenMessages   int64   `json:"unseen_messages"`
}

// InstructorStats summarises one instructor's courses and earnings.
type InstructorStats struct {
	TotalCourses     int64   `json:"total_courses"`
	AcceptedCourses  int64   `json:"accepted_courses"`
	PendingCourses   int64   `json:"pending_courses"`
	RejectedCourses  int64   `json:"rejected_courses"`
	TotalEnrollments int64   `json:"total_enrollments"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// StudentStats summarises one student's selections and purchases.
type StudentStats struct {
	SelectedCourses int64   `json:"selected_courses"`
	EnrolledCourses int64   `json:"enrolled_courses"`
	TotalSpent      float64 `json:"total_spent"`
}
