package messaging

import (
	"fmt"
	"log"
	"time"

	"careconnect-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

const (
	maxConnectAttempts = 3
	connectRetryDelay  = 5 * time.Second
)

// NewRabbitMQ dials the broker with a bounded retry. A nil connection is
// returned once all attempts are exhausted so the caller can keep serving
// HTTP traffic without messaging.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		conn, err := amqp091.Dial(connectionString)
		if err == nil {
			log.Println("Successfully connected to rabbitMQ")
			return conn
		}

		log.Printf("Failed to connect to rabbitMQ (attempt %d/%d): %s", attempt, maxConnectAttempts, err.Error())
		if attempt < maxConnectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}

	log.Println("Giving up on rabbitMQ connection, messaging disabled")
	return nil
}
