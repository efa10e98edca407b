package main

import (
	"context"
	"log"

	"linkfeed/internal/client/cli"
	"linkfeed/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
