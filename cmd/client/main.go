package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gophaccounts/internal/client/cli"
	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
)

func main() {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	app.Run(ctx)

}
