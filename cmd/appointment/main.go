package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"careconnect-service/internal/app/config"
	"careconnect-service/internal/app/delivery/http/middlewares"
	"careconnect-service/internal/app/delivery/http/routers"
	"careconnect-service/internal/app/drivers/database"
	"careconnect-service/internal/app/drivers/logger"
	"careconnect-service/internal/app/drivers/messaging"
	"careconnect-service/internal/app/services/core/appointments"
	"careconnect-service/internal/app/services/core/session"
	"careconnect-service/internal/app/services/core/users"
	"careconnect-service/internal/app/services/shared/events"
	redisRepo "careconnect-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)

	bootstrap := &config.Bootstrap{
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	redisRepository := redisRepo.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository)
	publisher := events.NewPublisher(rabbitConn, zapLogger)

	userMongoRepository := users.NewUserMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := appointmentMongoRepository.EnsureIndexes(startupCtx); err != nil {
		log.Fatalf("Failed to create appointment indexes: %v", err)
	}
	startupCancel()

	appointmentUsecase := appointments.NewAppointmentUsecase(zapLogger, appointmentMongoRepository, userMongoRepository, publisher)
	appointmentController := appointments.NewAppointmentController(zapLogger, appointmentUsecase)

	mw := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)
	router := routers.NewRouter(internalConfig, mw)
	routers.SetupAppointmentRoutes(router, internalConfig, mw, appointmentController)
	bootstrap.Router = router

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Appointment service listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	publisher.Close()
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shutdown cleanly: %v", err)
	}

	log.Println("Server exiting")
}
