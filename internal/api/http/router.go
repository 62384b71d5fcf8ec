package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Hello         *handlers.HelloHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Admins        *handlers.AdminsHandler
	Members       *handlers.MembersHandler
	Trainers      *handlers.TrainersHandler
	Classes       *handlers.ClassesHandler
	Bookings      *handlers.BookingsHandler
	Progress      *handlers.ProgressHandler
	Payments      *handlers.PaymentsHandler
	Contact       *handlers.ContactHandler
	Workouts      *handlers.WorkoutsHandler
	Dashboard     *handlers.DashboardHandler
	Notifications *handlers.NotificationsHandler
}

// RegisterRoutes wires HTTP routes. Authorization is not decided here: the
// policy middleware has already run by the time any handler executes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Hello.Root)
	app.Get("/hello", cfg.Hello.Root)
	app.Get("/api/hello", cfg.Hello.Root)
	app.Get("/greeting", cfg.Hello.Greeting)
	app.Get("/api/greeting", cfg.Hello.Greeting)
	app.Get("/status", cfg.Hello.Status)
	app.Get("/api/status", cfg.Hello.Status)

	// The auth endpoints answer on both prefixes.
	for _, group := range []fiber.Router{app.Group("/auth"), app.Group("/api/auth")} {
		group.Post("/login", cfg.Auth.Login)
		group.Post("/register", cfg.Auth.Register)
		group.Post("/refresh", cfg.Auth.Refresh)
		group.Post("/logout", cfg.Auth.Logout)
		group.Post("/validate", cfg.Auth.Validate)
		group.Get("/me", cfg.Auth.Me)
		group.Post("/change-password", cfg.Auth.ChangePassword)
		group.Post("/reset-password/:userId", cfg.Auth.ResetPassword)
		group.Post("/:userId/enable", cfg.Auth.SetEnabled)
	}

	api := app.Group("/api")

	admins := api.Group("/admins")
	admins.Get("", cfg.Admins.List)
	admins.Post("", cfg.Admins.Create)

	users := api.Group("/users")
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/search", cfg.Users.Search)
	users.Get("/enabled", cfg.Users.ListEnabled)
	users.Get("/disabled", cfg.Users.ListDisabled)
	users.Get("/username/:username", cfg.Users.GetByUsername)
	users.Get("/email/:email", cfg.Users.GetByEmail)
	users.Get("/role/:role", cfg.Users.ListByRole)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id/password", cfg.Users.UpdatePassword)
	users.Put("/:id/role", cfg.Users.UpdateRole)
	users.Put("/:id/enabled", cfg.Users.SetEnabled)
	users.Put("/:id", cfg.Users.UpdateProfile)
	users.Delete("/:id", cfg.Users.Delete)

	members := api.Group("/members")
	members.Post("", cfg.Members.Create)
	members.Get("", cfg.Members.List)
	members.Get("/me", cfg.Members.GetMine)
	members.Get("/:id", cfg.Members.Get)
	members.Put("/:id", cfg.Members.Update)
	members.Delete("/:id", cfg.Members.Delete)

	trainers := api.Group("/trainers")
	trainers.Post("", cfg.Trainers.Create)
	trainers.Get("", cfg.Trainers.List)
	trainers.Get("/:id", cfg.Trainers.Get)
	trainers.Put("/:id", cfg.Trainers.Update)
	trainers.Delete("/:id", cfg.Trainers.Delete)

	classes := api.Group("/classes")
	classes.Post("", cfg.Classes.Create)
	classes.Get("", cfg.Classes.List)
	classes.Get("/upcoming", cfg.Classes.ListUpcoming)
	classes.Get("/trainer/:trainerId", cfg.Classes.ListByTrainer)
	classes.Get("/:id", cfg.Classes.Get)
	classes.Put("/:id", cfg.Classes.Update)
	classes.Delete("/:id", cfg.Classes.Delete)

	bookings := api.Group("/class-bookings")
	bookings.Post("", cfg.Bookings.Book)
	bookings.Get("/active", cfg.Bookings.ListActive)
	bookings.Get("/cancelled", cfg.Bookings.ListCancelled)
	bookings.Get("/member/:memberId", cfg.Bookings.ListByMember)
	bookings.Get("/class/:classId", cfg.Bookings.ListByClass)
	bookings.Get("/:bookingId", cfg.Bookings.Get)
	bookings.Put("/:bookingId/cancel", cfg.Bookings.Cancel)
	bookings.Put("/:bookingId/status", cfg.Bookings.UpdateStatus)
	bookings.Delete("/:bookingId", cfg.Bookings.Delete)

	progress := api.Group("/progress")
	progress.Post("", cfg.Progress.Create)
	progress.Get("", cfg.Progress.List)
	progress.Get("/member/:memberId/date-range", cfg.Progress.ListByMemberDateRange)
	progress.Get("/member/:memberId/recent", cfg.Progress.ListRecentByMember)
	progress.Get("/member/:memberId", cfg.Progress.ListByMember)
	progress.Get("/:id", cfg.Progress.Get)
	progress.Put("/:id", cfg.Progress.Update)
	progress.Delete("/:id", cfg.Progress.Delete)

	payments := api.Group("/payments")
	payments.Post("", cfg.Payments.Record)
	payments.Get("", cfg.Payments.List)
	payments.Get("/member/:memberId", cfg.Payments.ListByMember)
	payments.Get("/:id", cfg.Payments.Get)
	payments.Put("/:id/status", cfg.Payments.UpdateStatus)

	contact := api.Group("/contact-messages")
	contact.Post("", cfg.Contact.Submit)
	contact.Get("", cfg.Contact.List)
	contact.Get("/:id", cfg.Contact.Get)
	contact.Put("/:id/read", cfg.Contact.MarkRead)
	contact.Delete("/:id", cfg.Contact.Delete)

	workouts := api.Group("/workouts")
	workouts.Post("", cfg.Workouts.Create)
	workouts.Get("", cfg.Workouts.List)
	workouts.Get("/:id", cfg.Workouts.Get)
	workouts.Put("/:id", cfg.Workouts.Update)
	workouts.Delete("/:id", cfg.Workouts.Delete)

	notifications := api.Group("/notifications")
	notifications.Post("/class-reminders/:classId", cfg.Notifications.SendClassReminders)
	notifications.Post("/payment-reminders", cfg.Notifications.SendPaymentReminders)
	notifications.Post("/membership-expiry-reminders", cfg.Notifications.SendMembershipExpiryReminders)
	notifications.Post("/welcome/:memberId", cfg.Notifications.SendWelcome)

	api.Get("/dashboard/stats", cfg.Dashboard.Stats)
}
