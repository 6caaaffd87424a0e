package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"zatch-server/internal/config"
	"zatch-server/internal/observability"
	"zatch-server/internal/store"

	adminHandler "zatch-server/internal/admin/handler"
	adminProcessor "zatch-server/internal/admin/processor"
	campaignHandler "zatch-server/internal/campaign/handler"
	campaignProcessor "zatch-server/internal/campaign/processor"
	"zatch-server/internal/campaign/rewards"
	kafkaClient "zatch-server/internal/clients/kafka"
	"zatch-server/internal/clients/mail"
	redisClient "zatch-server/internal/clients/redis"
	"zatch-server/internal/clients/storage"
	"zatch-server/internal/email"
	"zatch-server/internal/events"
	"zatch-server/internal/jobs"
	newsletterHandler "zatch-server/internal/newsletter/handler"
	newsletterProcessor "zatch-server/internal/newsletter/processor"
	"zatch-server/internal/ratelimit"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	CampaignHandler   campaignHandler.Handler
	NewsletterHandler newsletterHandler.Handler
	AdminHandler      adminHandler.Handler

	// Middleware
	RateLimiter *ratelimit.Limiter

	// Background workers
	NotificationConsumer *events.NotificationConsumer

	// Clients held for cleanup
	KafkaProducer *kafkaClient.Producer
	KafkaConsumer *kafkaClient.Consumer
	Redis         *redisClient.Client
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	screenshotStore, err := storage.NewClient(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	deps.KafkaConsumer = kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)

	deps.JobClient = jobs.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)

	// Initialize email service and notification pipeline
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)
	dispatcher := events.NewDispatcher(deps.KafkaProducer, logger)
	deps.NotificationConsumer = events.NewNotificationConsumer(deps.KafkaConsumer, emailService, logger, 0)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(
		&deps.Store,
		rewards.NewCalculator(),
		dispatcher,
		screenshotStore,
		deps.JobClient,
		cfg.Services.SiteBaseURL,
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize newsletter processor and handler
	newsletterProc := newsletterProcessor.New(&deps.Store, emailService, logger)
	deps.NewsletterHandler = newsletterHandler.New(newsletterProc, logger)

	// Initialize admin processor and handler
	adminProc := adminProcessor.New(&deps.Store, logger)
	deps.AdminHandler = adminHandler.New(adminProc, cfg.Admin, logger)

	// Initialize rate limiter
	deps.RateLimiter = ratelimit.New(deps.Redis, cfg.RateLimit, logger)

	return deps, nil
}

// Cleanup closes long-lived client connections
func (d *Dependencies) Cleanup() {
	ctx := context.Background()

	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka consumer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
}
