package routes

import (
	adminapi "campus-portal/internal/api/admin"
	attendanceapi "campus-portal/internal/api/attendance"
	authapi "campus-portal/internal/api/auth"
	"campus-portal/internal/api/billing"
	espapi "campus-portal/internal/api/esp"
	examsapi "campus-portal/internal/api/exams"
	materialsapi "campus-portal/internal/api/materials"
	"campus-portal/internal/api/paymentwebhook"
	"campus-portal/internal/api/plans"
	ticketsapi "campus-portal/internal/api/tickets"
	"campus-portal/internal/api/users"
	weeksapi "campus-portal/internal/api/weeks"
	"campus-portal/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", paymentwebhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.GET("/subscription", billing.GetMySubscription)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)

	auth.GET("/exams", examsapi.ListUpcomingExams)
	auth.GET("/attendance", attendanceapi.GetMyAttendance)

	auth.POST("/tickets", ticketsapi.CreateTicket)
	auth.GET("/tickets", ticketsapi.ListMyTickets)
	auth.GET("/tickets/:id", ticketsapi.GetTicket)
	auth.POST("/tickets/:id/replies", ticketsapi.ReplyToTicket)

	auth.POST("/esp/requests", espapi.CreateRequest)
	auth.GET("/esp/requests", espapi.ListMyRequests)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/materials", materialsapi.ListMyMaterials)
	subscribed.GET("/materials/:id/download", materialsapi.AuthorizeDownload)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.GET("/payments", adminapi.ListAllPayments)

	admin.POST("/plans", plans.CreatePlan)

	admin.GET("/weeks", weeksapi.ListWeeks)
	admin.POST("/weeks", weeksapi.CreateWeek)
	admin.PUT("/weeks/:id", weeksapi.UpdateWeek)
	admin.DELETE("/weeks/:id", weeksapi.DeleteWeek)

	admin.GET("/weeks/:id/materials", materialsapi.ListWeekMaterials)
	admin.POST("/weeks/:id/materials", materialsapi.CreateMaterial)
	admin.DELETE("/materials/:id", materialsapi.DeleteMaterial)

	admin.POST("/attendance", attendanceapi.MarkAttendance)
	admin.GET("/attendance/:userId", attendanceapi.GetStudentAttendance)

	admin.POST("/exams", examsapi.CreateExam)
	admin.PUT("/exams/:id", examsapi.UpdateExam)
	admin.DELETE("/exams/:id", examsapi.DeleteExam)

	admin.GET("/esp/requests", espapi.ListAllRequests)
	admin.PUT("/esp/requests/:id", espapi.UpdateRequestStatus)

	admin.GET("/tickets", ticketsapi.ListAllTickets)
	admin.POST("/tickets/:id/close", ticketsapi.CloseTicket)
}
