package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	wshandler "github.com/chris/campus-market/pkg/handlers/websockets"
	dydbstore "github.com/chris/campus-market/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var handler *wshandler.Handler

func init() {
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	store := dydbstore.New(dynamodb.NewFromConfig(cfg), dydbstore.Tables{
		WebsocketConnections: connectionsTable,
	})
	handler = wshandler.NewHandler(store)
}

// HandleRequest dispatches API Gateway websocket events by route key.
func HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	default:
		return handler.HandleDefault(ctx, request)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
