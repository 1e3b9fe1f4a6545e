package handler

import "github.com/gin-gonic/gin"

// Handlers groups every endpoint handler for route registration.
type Handlers struct {
	Users      *UserHandler
	Courses    *CourseHandler
	Selections *SelectionHandler
	Payments   *PaymentHandler
	Dashboard  *DashboardHandler
	Contact    *ContactHandler
}

// Register wires the authoritative route table. Paths mirror the public
// API contract, including its historical spellings ("statices",
// "single-massage-seen").
func Register(r *gin.Engine, h Handlers) {
	// accounts
	r.POST("/login-user", h.Users.Login)
	r.GET("/manage-user", h.Users.List)
	r.PATCH("/manage-user/update-role-admin/:userId", h.Users.MakeAdmin)
	r.PATCH("/manage-user/update-role-instructor/:userId", h.Users.MakeInstructor)
	r.DELETE("/user/delete/:id", h.Users.Delete)
	r.GET("/home/instructor", h.Users.HomeInstructors)
	r.GET("/all-instructor", h.Users.AllInstructors)

	// courses
	r.GET("/home/course", h.Courses.Home)
	r.GET("/all-course", h.Courses.All)
	r.POST("/add-course", h.Courses.Add)
	r.GET("/my-course/:email", h.Courses.Mine)
	r.PUT("/my-course/update-data/:id", h.Courses.Update)
	r.PATCH("/admin/approve-course/:id", h.Courses.Approve)
	r.PATCH("/admin/deny-course/:id", h.Courses.Deny)
	r.PATCH("/admin/feedback/:id", h.Courses.Feedback)
	r.DELETE("/admin/delete-course/:id", h.Courses.Delete)

	// checkout
	r.POST("/student/selected-course", h.Selections.Select)
	r.GET("/student/selected-all-course/:email", h.Selections.ListByStudent)
	r.DELETE("/student/delete-selected-course/:id", h.Selections.Remove)
	r.POST("/student/selected-course/create-payment-intent", h.Payments.CreateIntent)
	r.POST("/student/selected-course/payment-info", h.Payments.Record)
	r.PATCH("/student/course/available-seat-decrement/:id", h.Courses.DecrementSeat)
	r.GET("/student/enrolled-course/:email", h.Payments.Enrolled)
	r.GET("/student/payment-history/:email", h.Payments.History)

	// dashboards
	r.GET("/admin-dashboard/statices", h.Dashboard.AdminStats)
	r.GET("/admin-dashboard/report", h.Dashboard.Report)
	r.GET("/instructor-dashboard/statices/:email", h.Dashboard.InstructorStats)
	r.GET("/student-dashboard/statices/:email", h.Dashboard.StudentStats)

	// contact
	r.POST("/contact-us/message", h.Contact.Create)
	r.GET("/contact-us/all-message", h.Contact.List)
	r.PUT("/contact-us/single-massage-seen/:id", h.Contact.MarkSeen)
	r.DELETE("/contact-us/single-message/delete/:id", h.Contact.Delete)
}
