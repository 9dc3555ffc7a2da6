package main

import (
	bookingshandler "roomly/internal/bookings/handler"
	bookingsrepository "roomly/internal/bookings/repository"
	bookingsservice "roomly/internal/bookings/service"
	bookingsvalidator "roomly/internal/bookings/validator"
	roomshandler "roomly/internal/rooms/handler"
	roomsrepository "roomly/internal/rooms/repository"
	roomsservice "roomly/internal/rooms/service"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/contracts"
	"roomly/pkg/events"
)

const ServiceName = "roomly"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := initPublisher(cfg)
	defer func() { _ = publisher.Close() }()

	roomHandler, bookingHandler := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(roomHandler, bookingHandler)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	eventsCfg := events.LoadConfig()
	if !eventsCfg.Enabled() {
		cfg.Log.Info("Event publishing disabled: no Kafka brokers configured")
		return events.NopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(eventsCfg, ServiceName, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}
	return publisher
}

func initServices(cfg *config.Config, publisher events.Publisher) (contracts.Handler, contracts.Handler) {
	roomRepo := roomsrepository.NewMongoRoomRepository(cfg)
	roomService := roomsservice.NewRoomService(roomRepo, publisher, cfg)

	bookingValidator := bookingsvalidator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	lockRepo := bookingsrepository.NewBookingLockRepository(cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		lockRepo,
		roomRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Room and booking services initialized", "database", cfg.MongoDatabaseName)

	return roomshandler.NewRoomHandler(roomService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log)
}
