package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/config"
	appHTTP "github.com/sachinbalarbuilders-hue/attendance-portal/internal/handler/http"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/email"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/jwt"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/maintenance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/storage"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/repository/postgresql"
	attendanceService "github.com/sachinbalarbuilders-hue/attendance-portal/internal/service/attendance"
	serviceAuth "github.com/sachinbalarbuilders-hue/attendance-portal/internal/service/auth"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/service/extraction"
	userService "github.com/sachinbalarbuilders-hue/attendance-portal/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := postgresql.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to apply database schema:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	uploadRepo := postgresql.NewUploadRepository(db)
	leaveTotalsRepo := postgresql.NewLeaveTotalsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	processor := extraction.NewProcessor(extraction.Options{
		BlankEmployees:         cfg.Extraction.BlankEmployees,
		ExceptionTag:           cfg.Extraction.ExceptionTag,
		SuppressHalfDayPunches: cfg.Extraction.SuppressHalfDayPunches,
	})

	toggle := maintenance.NewToggle(cfg.App.MaintenanceFlagFile)

	authService := serviceAuth.NewAuthService(userRepo, JWTService, emailService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		cfg,
		processor,
		recordRepo,
		uploadRepo,
		leaveTotalsRepo,
		userRepo,
		fileStorage,
		emailService,
	)

	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	maintenanceHandler := appHTTP.NewMaintenanceHandler(toggle)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		toggle,
		authHandler,
		attendanceHandler,
		userHandler,
		maintenanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
