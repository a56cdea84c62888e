package main

import (
	"context"
	"log"

	"github.com/serenadiary/serena/internal/cli"
	"github.com/serenadiary/serena/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
