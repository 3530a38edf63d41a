package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/config"
	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	GoalService      *service.GoalService
	MilestoneService *service.MilestoneService
	NoteService      *service.NoteService
	TodoService      *service.TodoService
	CheckInService   *service.CheckInService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	milestoneRepository := repository.NewMilestoneRepository(database)
	noteRepository := repository.NewNoteRepository(database)
	todoRepository := repository.NewTodoRepository(database)
	checkInRepository := repository.NewCheckInRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	goalService := service.NewGoalService(goalRepository)
	milestoneService := service.NewMilestoneService(milestoneRepository, goalRepository)
	noteService := service.NewNoteService(noteRepository)
	todoService := service.NewTodoService(todoRepository)
	checkInService := service.NewCheckInService(checkInRepository)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		GoalService:      goalService,
		MilestoneService: milestoneService,
		NoteService:      noteService,
		TodoService:      todoService,
		CheckInService:   checkInService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
