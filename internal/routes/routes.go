package routes

import (
	"net/http"

	"github.com/strideapp/stride/internal/app"
	"github.com/strideapp/stride/internal/handler"
	"github.com/strideapp/stride/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	milestone := handler.NewMilestoneHandler(app.MilestoneService)
	note := handler.NewNoteHandler(app.NoteService)
	todo := handler.NewTodoHandler(app.TodoService)
	checkIn := handler.NewCheckInHandler(app.CheckInService)

	mux := http.NewServeMux()

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(auth.Me))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("PUT /api/goals", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals", middleware.RequireAuth(goal.Delete))

	// Milestones
	mux.HandleFunc("GET /api/milestones", middleware.RequireAuth(milestone.List))
	mux.HandleFunc("POST /api/milestones", middleware.RequireAuth(milestone.Create))
	mux.HandleFunc("PUT /api/milestones", middleware.RequireAuth(milestone.Update))
	mux.HandleFunc("DELETE /api/milestones", middleware.RequireAuth(milestone.Delete))

	// Notes
	mux.HandleFunc("GET /api/notes", middleware.RequireAuth(note.List))
	mux.HandleFunc("POST /api/notes", middleware.RequireAuth(note.Create))
	mux.HandleFunc("PUT /api/notes", middleware.RequireAuth(note.Update))
	mux.HandleFunc("DELETE /api/notes", middleware.RequireAuth(note.Delete))

	// Todos
	mux.HandleFunc("GET /api/todos", middleware.RequireAuth(todo.List))
	mux.HandleFunc("POST /api/todos", middleware.RequireAuth(todo.Create))
	mux.HandleFunc("PUT /api/todos", middleware.RequireAuth(todo.Update))
	mux.HandleFunc("DELETE /api/todos", middleware.RequireAuth(todo.Delete))

	// Check-ins
	mux.HandleFunc("GET /api/checkins", middleware.RequireAuth(checkIn.List))
	mux.HandleFunc("POST /api/checkins", middleware.RequireAuth(checkIn.Create))
	mux.HandleFunc("PUT /api/checkins", middleware.RequireAuth(checkIn.Update))
	mux.HandleFunc("DELETE /api/checkins", middleware.RequireAuth(checkIn.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.CORS(app.Cfg.CORSOrigins),
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}
