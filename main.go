package main

import (
	"context"
	"os"

	"github.com/locvowork/employee_management_sample/samples/internal/bootstrap"
	"github.com/locvowork/employee_management_sample/samples/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		logger.ErrorLog(ctx, "Failed to run samples: %v", err)
		os.Exit(1)
	}
}
