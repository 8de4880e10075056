package main

import (
	"context"
	"log"
	"todos-go-backend/config"
	"todos-go-backend/pkg/infrastructure/datastore"

	"entgo.io/ent/dialect"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("failed opening %s client: %v", config.C.Database.Driver, err)
	}
	defer client.Close()
	createDBSchema(client)
}

func createDBSchema(client dialect.Driver) {
	if err := datastore.Migrate(context.Background(), client); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}
}
