package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

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

	// outside Lambda the same router runs as a plain HTTP server
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		if err := c.Serve(ctx); err != nil {
			config.Logger.WithError(err).Fatal("Server stopped")
		}
		return
	}

	adapter := httpadapter.New(c.Router())
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
