package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	bookinghandler "hoteldesk/internal/bookings/handler"
	bookingrepository "hoteldesk/internal/bookings/repository"
	bookingservice "hoteldesk/internal/bookings/service"
	expensehandler "hoteldesk/internal/expenses/handler"
	expenserepository "hoteldesk/internal/expenses/repository"
	expenseservice "hoteldesk/internal/expenses/service"
	inventoryhandler "hoteldesk/internal/inventory/handler"
	inventoryrepository "hoteldesk/internal/inventory/repository"
	inventoryservice "hoteldesk/internal/inventory/service"
	salaryhandler "hoteldesk/internal/salaries/handler"
	salaryrepository "hoteldesk/internal/salaries/repository"
	salaryservice "hoteldesk/internal/salaries/service"
	"hoteldesk/pkg/app"
	"hoteldesk/pkg/config"
	"hoteldesk/pkg/contracts"
	mongostore "hoteldesk/pkg/db/mongo"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/validator"
)

const ServiceName = "hoteldesk"

func main() {
	cfg := config.Load(ServiceName)

	client, err := mongostore.Connect(context.Background(), cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	cfg.Log.Info("Connected to MongoDB", "database", cfg.MongoDatabaseName)

	publisher := events.NewBoundedPublisher(initPublisher(cfg), cfg.EventPublishTimeout)
	handlers := initHandlers(cfg, client.Database(cfg.MongoDatabaseName), publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(client, handlers...)
	serverApp.OnShutdown("record events", func(context.Context) error {
		return publisher.Close()
	})
	serverApp.OnShutdown("mongodb", client.Disconnect)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		cfg.Log.Info("Record events disabled, no Kafka brokers configured")
		return events.NopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		Source:  ServiceName,
	}, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create record event publisher", "error", err)
	}

	cfg.Log.Info("Record events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return publisher
}

func initHandlers(cfg *config.Config, db *mongo.Database, publisher events.Publisher) []contracts.Handler {
	timeouts := mongostore.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout}
	v := validator.New(cfg.Log)

	bookings := bookingservice.NewBookingService(
		bookingrepository.NewMongoBookingRepository(db, timeouts), v, publisher, cfg,
	)
	inventory := inventoryservice.NewInventoryService(
		inventoryrepository.NewMongoInventoryRepository(db, timeouts), v, publisher, cfg,
	)
	salaries := salaryservice.NewSalaryService(
		salaryrepository.NewMongoSalaryRepository(db, timeouts), v, publisher, cfg,
	)
	expenses := expenseservice.NewExpenseService(
		expenserepository.NewMongoExpenseRepository(db, timeouts), v, publisher, cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		bookinghandler.NewBookingHandler(bookings, cfg.Log),
		inventoryhandler.NewInventoryHandler(inventory, cfg.Log),
		salaryhandler.NewSalaryHandler(salaries, cfg.Log),
		expensehandler.NewExpenseHandler(expenses, cfg.Log),
	}
}
