package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mytsparks/Campus-Resource-Hub/app"
	"github.com/mytsparks/Campus-Resource-Hub/app/handlers"
	"github.com/mytsparks/Campus-Resource-Hub/app/middleware"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
	"github.com/mytsparks/Campus-Resource-Hub/app/scheduler"
	"github.com/mytsparks/Campus-Resource-Hub/app/usecases"
	"github.com/mytsparks/Campus-Resource-Hub/app/utils"
	"github.com/mytsparks/Campus-Resource-Hub/config"
	"github.com/mytsparks/Campus-Resource-Hub/pkg/database"
	"github.com/mytsparks/Campus-Resource-Hub/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("loading config: ", err)
	}

	db, err := database.NewPostgresDatabase(cfg)
	if err != nil {
		log.Fatal("connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetDB()); err != nil {
		log.Fatal("migrating database: ", err)
	}

	// Repositories
	bookingRepo := repositories.NewBookingRepository(db.GetDB())
	resourceRepo := repositories.NewResourceRepository(db.GetDB())
	waitlistRepo := repositories.NewWaitlistRepository(db.GetDB())
	userDirectory := repositories.NewUserDirectory(db.GetDB())

	// Notifications
	mailer := utils.NewMailer(cfg.SMTP, userDirectory, 2)
	defer mailer.Shutdown()

	// Usecases
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, resourceRepo, waitlistRepo, mailer)
	resourceUsecase := usecases.NewResourceUsecase(resourceRepo)
	waitlistUsecase := usecases.NewWaitlistUsecase(waitlistRepo, resourceRepo)

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	resourceHandler := handlers.NewResourceHandler(resourceUsecase)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistUsecase, resourceUsecase)

	sweeper := scheduler.NewCompletionSweeper(bookingRepo, cfg.Sweeper.Schedule)
	if err := sweeper.Start(); err != nil {
		log.Fatal("starting completion sweeper: ", err)
	}
	defer sweeper.Stop()

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		resourceHandler,
		bookingHandler,
		waitlistHandler,
		middleware.Auth(cfg.JWT.Secret),
	)

	srv.GetEcho().Logger.Fatal(srv.Start())
}
