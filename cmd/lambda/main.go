package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/container"
)

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to start")
	}

	adapter := httpadapter.New(c.Router)
	lambda.Start(adapter.ProxyWithContext)
}
