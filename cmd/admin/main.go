package main

import (
	"context"
	"log"

	"github.com/dhanya-017/infinart-admin/internal/admin/cli"
	"github.com/dhanya-017/infinart-admin/internal/admin/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
