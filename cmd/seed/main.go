package main

import (
	"context"
	"flag"
	"log"
	"os"
	"todos-go-backend/config"
	"todos-go-backend/pkg/adapter/repository/todorepository"
	"todos-go-backend/pkg/infrastructure/datastore"
	"todos-go-backend/pkg/infrastructure/logger"
	usecase "todos-go-backend/pkg/usecase/usecase/todo"
)

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	truncate := flag.Bool("truncate", false, "Truncate data (delete all todos)")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	config.ReadConfig(config.ReadConfigOption{})
	log.Printf("Starting seed tool for environment: %s", config.C.AppEnv)

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := datastore.Migrate(ctx, client); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	repo := todorepository.NewTodoRepository(client)

	if *truncate {
		log.Println("Truncating todos table...")
		n, err := repo.DeleteAll(ctx)
		if err != nil {
			log.Fatalf("Failed to truncate data: %v", err)
		}
		log.Printf("Deleted %d todos", n)
	}

	seeder := usecase.NewSeeder(repo, logger.New(config.C.AppEnv, config.C.Log.Level))
	n, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed todos: %v", err)
	}

	log.Printf("Seeding completed successfully! (%d todos created)", n)
}
