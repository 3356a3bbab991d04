package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/delivery/http/routers"
	"timetable-service/internal/app/drivers/database"
	"timetable-service/internal/app/drivers/logger"
	"timetable-service/internal/app/drivers/messaging"
	"timetable-service/internal/app/services/core/checkruns"
	"timetable-service/internal/app/services/core/conflicts"
	"timetable-service/internal/app/services/core/patterns"
	"timetable-service/internal/app/services/core/progress"
	"timetable-service/internal/app/services/core/proposals"
	"timetable-service/internal/app/services/core/session"
	"timetable-service/internal/app/services/shared/events"
	"timetable-service/internal/app/services/shared/mongodb"
	"timetable-service/internal/app/services/shared/ratelimiter"
	sharedredis "timetable-service/internal/app/services/shared/redis"
	"timetable-service/internal/app/services/timetable_api/instructors"
	"timetable-service/internal/app/services/timetable_api/optimizer"
	"timetable-service/internal/app/services/timetable_api/rooms"
	"timetable-service/internal/app/services/timetable_api/sections"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	eventPublisher := events.NewEventPublisher(bootstrap.RabbitMQ, bootstrap.ZapLogger)
	outboundLimiter := ratelimiter.NewOutboundLimiter(bootstrap.InternalConfig.App.OutboundRequestsPerSecond)
	checkRunRepository := mongodb.NewCheckRunRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionService, bootstrap.InternalConfig)

	// Timetable API clients
	instructorClient := instructors.NewInstructorBookingClient(bootstrap.InternalConfig.TimetableAPI.BaseUrl, outboundLimiter)
	sectionClient := sections.NewSectionBookingClient(bootstrap.InternalConfig.TimetableAPI.BaseUrl, outboundLimiter)
	roomClient := rooms.NewRoomScheduleClient(
		bootstrap.InternalConfig.TimetableAPI.BaseUrl,
		outboundLimiter,
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.RoomGridCacheTTLSeconds)*time.Second,
		bootstrap.ZapLogger,
	)
	optimizerClient := optimizer.NewOptimizerClient(
		bootstrap.InternalConfig.Optimizer.BaseUrl,
		time.Duration(bootstrap.InternalConfig.Optimizer.TimeoutSeconds)*time.Second,
	)

	// Patterns
	patternUsecase := patterns.NewPatternUsecase(bootstrap.ZapLogger)
	patternController := patterns.NewPatternController(bootstrap.ZapLogger, patternUsecase)

	// Progress
	progressUsecase := progress.NewProgressUsecase(bootstrap.ZapLogger)
	progressController := progress.NewProgressController(bootstrap.ZapLogger, progressUsecase)

	// Conflicts
	conflictUsecase := conflicts.NewConflictUsecase(
		instructorClient,
		sectionClient,
		roomClient,
		checkRunRepository,
		eventPublisher,
		bootstrap.ZapLogger,
	)
	conflictController := conflicts.NewConflictController(bootstrap.ZapLogger, conflictUsecase)

	// Proposals
	proposalUsecase := proposals.NewProposalUsecase(
		optimizerClient,
		conflictUsecase,
		checkRunRepository,
		eventPublisher,
		bootstrap.ZapLogger,
	)
	proposalController := proposals.NewProposalController(bootstrap.ZapLogger, proposalUsecase)

	// Check run history
	checkRunUsecase := checkruns.NewCheckRunUsecase(checkRunRepository, bootstrap.ZapLogger)
	checkRunController := checkruns.NewCheckRunController(bootstrap.ZapLogger, checkRunUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patternController,
		progressController,
		conflictController,
		proposalController,
		checkRunController,
	)
}
