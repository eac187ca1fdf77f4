package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"github.com/FORIFOR/fanscout-app/internal/database"
	"github.com/FORIFOR/fanscout-app/internal/handlers"
	"github.com/FORIFOR/fanscout-app/internal/middleware"
	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/realtime"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
	"github.com/FORIFOR/fanscout-app/pkg/rabbitmq"
)

type appRepositories struct {
	users         repositories.UserRepository
	clubs         repositories.ClubRepository
	matches       repositories.MatchRepository
	reports       repositories.ReportRepository
	notifications repositories.NotificationRepository
	rewards       repositories.RewardRepository
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "fanscout_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("DATABASE_DRIVER", "") // empty = in-memory store
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	dbDriver := viper.GetString("DATABASE_DRIVER")
	dbDSN := viper.GetString("DATABASE_DSN")

	// --- RabbitMQ (optional, best-effort event fan-out) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, notification fan-out disabled: %v", err)
		} else {
			mqClient = client
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	// The in-memory store is the default; setting DATABASE_DRIVER swaps
	// in the GORM-backed repositories without touching the services.
	repos, err := buildRepositories(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	seedData(repos.clubs, repos.matches)

	// --- Realtime hub ---
	hub := realtime.NewHub()

	// --- Services ---
	var mqPublisher rabbitmq.Publisher
	if mqClient != nil {
		mqPublisher = mqClient
	}
	notificationService := services.NewNotificationService(repos.notifications, hub, mqPublisher)
	reportService := services.NewReportService(repos.reports, repos.users, repos.matches, notificationService)
	rewardService := services.NewRewardService(repos.rewards, notificationService)
	matchService := services.NewMatchService(repos.matches, repos.clubs)
	clubService := services.NewClubService(repos.clubs)
	authService := services.NewAuthService(repos.users, jwtSecret)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	clubHandler := handlers.NewClubHandler(clubService)
	matchHandler := handlers.NewMatchHandler(matchService)
	reportHandler := handlers.NewReportHandler(reportService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	wsHandler := handlers.NewWSHandler(hub)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	clubHandler.RegisterRoutes(api)
	matchHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	rewardHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)

	// Routes that require a valid JWT
	protected := api.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)

	// Push channel
	wsHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- RabbitMQ consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for notification events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received notification event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeNotificationEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildRepositories wires either the in-memory store or the GORM-backed
// one, depending on configuration.
func buildRepositories(driver, dsn string) (*appRepositories, error) {
	if driver == "" {
		return &appRepositories{
			users:         repositories.NewMemoryUserRepository(),
			clubs:         repositories.NewMemoryClubRepository(),
			matches:       repositories.NewMemoryMatchRepository(),
			reports:       repositories.NewMemoryReportRepository(),
			notifications: repositories.NewMemoryNotificationRepository(),
			rewards:       repositories.NewMemoryRewardRepository(),
		}, nil
	}

	db, err := database.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return &appRepositories{
		users:         repositories.NewGORMUserRepository(db),
		clubs:         repositories.NewGORMClubRepository(db),
		matches:       repositories.NewGORMMatchRepository(db),
		reports:       repositories.NewGORMReportRepository(db),
		notifications: repositories.NewGORMNotificationRepository(db),
		rewards:       repositories.NewGORMRewardRepository(db),
	}, nil
}

// seedData populates an empty store with the demo clubs and fixtures.
func seedData(clubRepo repositories.ClubRepository, matchRepo repositories.MatchRepository) {
	existing, err := clubRepo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	clubs := []models.Club{
		{Name: "FC Tokyo", Logo: "", League: "J1 League", Description: "Top-tier professional club based in Tokyo", IsAdmin: true},
		{Name: "Cerezo Osaka", Logo: "", League: "J1 League", Description: "Professional club based in Osaka", IsAdmin: true},
		{Name: "Vissel Kobe", Logo: "", League: "J1 League", Description: "Professional club based in Kobe", IsAdmin: true},
		{Name: "Yokohama F. Marinos", Logo: "", League: "J1 League", Description: "Professional club based in Yokohama", IsAdmin: true},
	}
	for i := range clubs {
		if err := clubRepo.Create(&clubs[i]); err != nil {
			log.Printf("Error seeding club %s: %v", clubs[i].Name, err)
		}
	}

	now := time.Now()
	matches := []models.Match{
		{
			HomeTeamID:    2,
			AwayTeamID:    3,
			Date:          now.Add(24 * time.Hour),
			Venue:         "Yanmar Stadium Nagai, Osaka",
			League:        "J1 League",
			ScoutingClubs: []uint{1, 4},
		},
		{
			HomeTeamID:    1,
			AwayTeamID:    4,
			Date:          now.Add(48 * time.Hour),
			Venue:         "Ajinomoto Stadium, Tokyo",
			League:        "J1 League",
			ScoutingClubs: []uint{2, 3},
		},
	}
	for i := range matches {
		if err := matchRepo.Create(&matches[i]); err != nil {
			log.Printf("Error seeding match at %s: %v", matches[i].Venue, err)
		}
	}
}
