package main

import (
	"context"
	"log"

	"blog-service/cmd/api/app"
	"blog-service/cmd/api/server"
)

func main() {
	ctx, cancel := server.WithSignal(context.Background())
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
