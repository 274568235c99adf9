package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/campus-market/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler handles WebSocket subscriptions. Every connection is scoped to
// a single chat, named at connect time.
type Handler struct {
	connManager websockets.ConnectionManager
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager) *Handler {
	return &Handler{
		connManager: connManager,
	}
}

// HandleConnect handles new client connections. The chat to subscribe to
// arrives as a query string parameter on the connect request.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	chatID := request.QueryStringParameters["chatId"]
	if chatID == "" {
		slog.Warn("Connect request without chatId", "connectionId", request.RequestContext.ConnectionID)
		return events.APIGatewayProxyResponse{StatusCode: 400}, nil
	}

	slog.Info("Client connected", "connectionId", request.RequestContext.ConnectionID, "chatId", chatID)

	if err := h.connManager.AddConnection(ctx, request.RequestContext.ConnectionID, chatID); err != nil {
		slog.Error("failed to save connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDisconnect handles client disconnections.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Client disconnected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to delete connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDefault handles messages sent from a client.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Received message", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	// Clients post messages over HTTP, not the socket; log and ignore.
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections by default for local development.
		return true
	},
}

// ServeChat handles WebSocket subscribe requests for the local
// development server, scoped to the chat named in the path.
func (h *Handler) ServeChat(w http.ResponseWriter, r *http.Request, chatID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// Generate a unique connection ID for local connections.
	connectionID := uuid.New().String()
	slog.Info("Client connected locally", "connectionId", connectionID, "chatId", chatID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, chatID); err != nil {
		slog.Error("failed to save local connection ID", "error", err)
		return
	}

	defer func() {
		slog.Info("Client disconnected locally", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to delete local connection ID", "error", err)
		}
	}()

	// Keep the connection alive until the client closes it. Incoming
	// frames are not processed, but the read loop detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("unexpected close error", "error", err)
			}
			break
		}
	}
}
