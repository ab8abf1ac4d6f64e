package main

import (
	"context"
	"log"

	"github.com/uelms-project/uelms/internal/cli"
	"github.com/uelms-project/uelms/internal/server"
	"github.com/uelms-project/uelms/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	backend, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer backend.Close()

	// Schema migration and admin seeding run in the background so the
	// first prompt appears immediately.
	backend.StartBackgroundInit(ctx)

	cli.NewApp(backend).Run(ctx)
}
