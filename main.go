package main

import (
	"context"
	"log"
	"os"
	"test-service/internal/db"
	"test-service/internal/event"
	"test-service/internal/handlers"
	"test-service/internal/repository"
	"test-service/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	client, err := db.Connect(context.Background(), mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "test_service"
	}
	database := client.Database(dbName)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	testRepo := repository.NewTestRepository(database)
	submissionRepo := repository.NewSubmissionRepository(database)

	testService := service.NewTestService(testRepo, submissionRepo)
	submissionService := service.NewSubmissionService(testRepo, submissionRepo)

	testHandler := handlers.NewTestHandler(testService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)

	api := r.Group("/api/tests")
	{
		api.POST("/", func(c *gin.Context) {
			testHandler.UpsertTest(c)
			if publisher != nil {
				publisher.Publish("test.upserted", gin.H{"timestamp": time.Now()})
			}
		})
		api.GET("/:id", func(c *gin.Context) {
			testHandler.GetTest(c)
			if publisher != nil {
				publisher.Publish("test.retrieved", gin.H{"testId": c.Param("id")})
			}
		})
		api.POST("/:id/submit", func(c *gin.Context) {
			submissionHandler.Submit(c)
			if publisher != nil {
				publisher.Publish("test.submitted", gin.H{
					"testId":    c.Param("id"),
					"timestamp": time.Now(),
				})
			}
		})
		api.GET("/:id/submissions", func(c *gin.Context) {
			submissionHandler.ListSubmissions(c)
			if publisher != nil {
				publisher.Publish("test.submissions_listed", gin.H{"testId": c.Param("id")})
			}
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	r.Run(":" + port)
}
