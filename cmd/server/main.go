// cmd/server/main.go
package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/unclebandit/campaigntrack/internal/config"
	"github.com/unclebandit/campaigntrack/internal/controller"
	"github.com/unclebandit/campaigntrack/internal/db"
	"github.com/unclebandit/campaigntrack/internal/handler"
	"github.com/unclebandit/campaigntrack/internal/logger"
	"github.com/unclebandit/campaigntrack/internal/queue"
	"github.com/unclebandit/campaigntrack/internal/repository"
	"github.com/unclebandit/campaigntrack/internal/service"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Pick the storage backend: Postgres when a DSN is configured,
	// otherwise flat JSON files under the data dir.
	var campaignRepo repository.CampaignRepositoryInterface
	var userRepo repository.UserRepositoryInterface
	if cfg.DatabaseDSN != "" {
		pg, err := db.InitPostgres(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal("cannot init database", zap.Error(err))
		}
		campaignRepo = repository.NewPostgresCampaignRepository(pg)
		userRepo = repository.NewPostgresUserRepository(pg)
		log.Info("using postgres store")
	} else {
		campaignRepo = repository.NewFileCampaignRepository(cfg.CampaignsFile())
		userRepo = repository.NewFileUserRepository(cfg.UsersFile())
		log.Info("using file store", zap.String("data_dir", cfg.DataDir))
	}

	// Event transport: RabbitMQ when configured, else in-process.
	var publisher queue.Publisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatal("cannot connect to amqp", zap.Error(err))
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("publishing campaign events to amqp")
	} else {
		q := queue.NewInMemoryQueue(log)
		queue.StartCampaignEventsSubscriber(q, log)
		publisher = q
	}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		Queue:        publisher,
		Logger:       log,
	}
	authService := &service.AuthService{
		UserRepo: userRepo,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}
	authController := &controller.AuthController{
		AuthService: authService,
	}

	router := handler.NewRouter(campaignController, authController, cfg.StaticDir, log)

	log.Info("server running", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
