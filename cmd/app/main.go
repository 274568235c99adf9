package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	chatshandler "github.com/chris/campus-market/pkg/handlers/chats"
	escrowhandler "github.com/chris/campus-market/pkg/handlers/escrow"
	offershandler "github.com/chris/campus-market/pkg/handlers/offers"
	productshandler "github.com/chris/campus-market/pkg/handlers/products"
	swapshandler "github.com/chris/campus-market/pkg/handlers/swaps"
	wshandler "github.com/chris/campus-market/pkg/handlers/websockets"
	"github.com/chris/campus-market/pkg/middleware"
	"github.com/chris/campus-market/pkg/notifications"
	"github.com/chris/campus-market/pkg/scheduler"
	dydbstore "github.com/chris/campus-market/pkg/storage/dynamodb"
	"github.com/chris/campus-market/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Products:             os.Getenv("DYNAMODB_PRODUCTS_TABLE_NAME"),
		Offers:               os.Getenv("DYNAMODB_OFFERS_TABLE_NAME"),
		Swaps:                os.Getenv("DYNAMODB_SWAPS_TABLE_NAME"),
		Escrow:               os.Getenv("DYNAMODB_ESCROW_TABLE_NAME"),
		Chats:                os.Getenv("DYNAMODB_CHATS_TABLE_NAME"),
		Messages:             os.Getenv("DYNAMODB_MESSAGES_TABLE_NAME"),
		WebsocketConnections: os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	if tables.Products == "" || tables.Offers == "" || tables.Swaps == "" ||
		tables.Escrow == "" || tables.Chats == "" || tables.Messages == "" ||
		tables.WebsocketConnections == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	// WebSocket publisher. Without a management API endpoint (local
	// development) the fan-out is a no-op; reads still work.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	notifier := notifications.NewDispatcher(store, publisher)

	// Create our handlers
	offersHandler := offershandler.NewOffersHandler(store, notifier)
	swapsHandler := swapshandler.NewSwapsHandler(store, notifier)
	escrowHandler := escrowhandler.NewEscrowHandler(store, store, sqsScheduler, notifier)
	chatsHandler := chatshandler.NewChatsHandler(store, publisher)
	productsHandler := productshandler.NewProductsHandler(store)
	websocketHandler := wshandler.NewHandler(store)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(slog.Default()))

	// The local websocket endpoint carries its own identity handling.
	router.Get("/ws/{chatId}", func(w http.ResponseWriter, r *http.Request) {
		websocketHandler.ServeChat(w, r, chi.URLParam(r, "chatId"))
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity)

		r.Get("/products/{productId}", func(w http.ResponseWriter, req *http.Request) {
			productsHandler.GetProductById(w, req, chi.URLParam(req, "productId"))
		})
		r.Get("/sellers/{sellerId}/products", func(w http.ResponseWriter, req *http.Request) {
			productsHandler.ListSellerProducts(w, req, chi.URLParam(req, "sellerId"))
		})

		r.Post("/products/{productId}/offers", func(w http.ResponseWriter, req *http.Request) {
			offersHandler.SubmitOffer(w, req, chi.URLParam(req, "productId"))
		})
		r.Get("/products/{productId}/offers", func(w http.ResponseWriter, req *http.Request) {
			offersHandler.ListOffersByProduct(w, req, chi.URLParam(req, "productId"))
		})
		r.Post("/offers/{offerId}/resolution", func(w http.ResponseWriter, req *http.Request) {
			offersHandler.ResolveOffer(w, req, chi.URLParam(req, "offerId"))
		})

		r.Post("/products/{productId}/swaps", func(w http.ResponseWriter, req *http.Request) {
			swapsHandler.ProposeSwap(w, req, chi.URLParam(req, "productId"))
		})
		r.Get("/products/{productId}/swaps", func(w http.ResponseWriter, req *http.Request) {
			swapsHandler.ListSwapsByProduct(w, req, chi.URLParam(req, "productId"))
		})
		r.Post("/swaps/{swapId}/resolution", func(w http.ResponseWriter, req *http.Request) {
			swapsHandler.ResolveSwap(w, req, chi.URLParam(req, "swapId"))
		})

		r.Post("/offers/{offerId}/escrow", func(w http.ResponseWriter, req *http.Request) {
			escrowHandler.InitiateEscrow(w, req, chi.URLParam(req, "offerId"))
		})
		r.Post("/escrow/{escrowId}/decision", func(w http.ResponseWriter, req *http.Request) {
			escrowHandler.DecideEscrow(w, req, chi.URLParam(req, "escrowId"))
		})
		r.Post("/escrow/{escrowId}/completion", func(w http.ResponseWriter, req *http.Request) {
			escrowHandler.CompleteEscrow(w, req, chi.URLParam(req, "escrowId"))
		})
		r.Get("/escrow", escrowHandler.ListEscrows)

		r.Post("/chats", chatsHandler.ResolveChat)
		r.Get("/chats", chatsHandler.ListChats)
		r.Get("/chats/{chatId}/messages", func(w http.ResponseWriter, req *http.Request) {
			chatsHandler.ListMessages(w, req, chi.URLParam(req, "chatId"))
		})
		r.Post("/chats/{chatId}/messages", func(w http.ResponseWriter, req *http.Request) {
			chatsHandler.PostMessage(w, req, chi.URLParam(req, "chatId"))
		})
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
