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
	mailerDriver "careconnect-service/internal/app/drivers/mailer"
	"careconnect-service/internal/app/drivers/messaging"
	"careconnect-service/internal/app/services/core/notifications"
	"careconnect-service/internal/app/services/core/session"
	"careconnect-service/internal/app/services/shared/events"
	"careconnect-service/internal/app/services/shared/mailer"
	redisRepo "careconnect-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	smtpClient := mailerDriver.NewSMTPClient(driverConfig)

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
	mailerService := mailer.NewMailerService(smtpClient, zapLogger, internalConfig.App.Env)

	notificationMongoRepository := notifications.NewNotificationMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := notificationMongoRepository.EnsureIndexes(startupCtx); err != nil {
		log.Fatalf("Failed to create notification indexes: %v", err)
	}
	startupCancel()

	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository)
	notificationController := notifications.NewNotificationController(zapLogger, notificationUsecase)

	eventHandler := notifications.NewNotificationEventHandler(zapLogger, notificationMongoRepository, mailerService)
	consumer := events.NewConsumer(rabbitConn, zapLogger, eventHandler)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	if err := consumer.Start(consumerCtx); err != nil {
		log.Fatalf("Failed to start event consumer: %v", err)
	}
	bootstrap.ConsumerStop = func() {
		consumerCancel()
		consumer.Stop()
	}

	mw := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)
	router := routers.NewRouter(internalConfig, mw)
	routers.SetupNotificationRoutes(router, internalConfig, mw, notificationController)
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
	log.Printf("Notification service listening on %s", internalConfig.App.Port)

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

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shutdown cleanly: %v", err)
	}

	log.Println("Server exiting")
}
