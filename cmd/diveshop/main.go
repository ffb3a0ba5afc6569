package main

import (
	"context"
	"time"

	"github.com/suncoast/diveshop/config"
	"github.com/suncoast/diveshop/internal/app"
	"github.com/suncoast/diveshop/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	diveshopService := app.New(sigCtx, cfg)

	diveshopService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	diveshopService.Close(ctx)
}
