package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saulo-duarte/quizmaster-lambda/internal/cli"
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/container"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	defer c.Close()

	app := cli.NewApp(cli.Deps{
		Quizzes:   c.QuizContainer.Service,
		Resolver:  c.ResolverContainer.Resolver,
		Generator: c.GeneratorContainer.Service,
		Serve:     c.Serve,
	})

	if err := app.RunContext(ctx, os.Args); err != nil {
		config.Logger.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
