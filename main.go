package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lfmcarvalho/gerenciamento_propriedades/cache"
	"github.com/lfmcarvalho/gerenciamento_propriedades/config"
	"github.com/lfmcarvalho/gerenciamento_propriedades/repository"
	"github.com/lfmcarvalho/gerenciamento_propriedades/routes"
	"github.com/rs/cors"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(users repository.UserRepository, properties repository.PropertyRepository, propertyCache cache.PropertyCache, secret []byte) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, users, properties, propertyCache, secret)
	return router
}

func main() {
	loadEnv()

	secret := os.Getenv("JWT_KEY")
	if secret == "" {
		log.Fatal("JWT_KEY not set in environment")
	}

	client, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	db := client.Database(os.Getenv("DB"))
	if err := config.EnsureIndexes(db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	redisClient := config.InitRedis()

	users := repository.NewMongoUserRepo(db)
	properties := repository.NewMongoPropertyRepo(db)
	propertyCache := cache.NewRedisPropertyCache(redisClient)

	router := setupRouter(users, properties, propertyCache, []byte(secret))

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
