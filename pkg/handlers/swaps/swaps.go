package swaps

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/handlers"
	"github.com/chris/campus-market/pkg/mapping"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/notifications"
	"github.com/chris/campus-market/pkg/storage"
)

// SwapsHandler holds the dependencies for swap-related handlers.
type SwapsHandler struct {
	Store    storage.ApiStore
	Notifier notifications.Notifier
}

// NewSwapsHandler creates a new SwapsHandler.
func NewSwapsHandler(store storage.ApiStore, notifier notifications.Notifier) *SwapsHandler {
	return &SwapsHandler{Store: store, Notifier: notifier}
}

// ProposeSwap handles the logic for proposing an item trade on a product.
func (h *SwapsHandler) ProposeSwap(w http.ResponseWriter, r *http.Request, productId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}
	if !caller.Verified {
		handlers.WriteStoreError(w, "propose swap", fmt.Errorf("account verification required to propose swaps: %w", storage.ErrPermissionDenied))
		return
	}

	var newSwap api.NewSwap
	if err := json.NewDecoder(r.Body).Decode(&newSwap); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	domainSwap := mapping.ToDomainNewSwap(productId, caller.UserID, &newSwap)

	createdSwap, err := h.Store.CreateSwap(r.Context(), domainSwap)
	if err != nil {
		handlers.WriteStoreError(w, "propose swap", err)
		return
	}

	h.notify(r, createdSwap, notifications.EventSwapProposed, caller.UserID)

	apiSwap := mapping.ToApiSwap(createdSwap)
	handlers.WriteJSON(w, http.StatusCreated, apiSwap)
}

// ResolveSwap handles the accept, reject and completed transitions on a
// swap proposal. Accept and reject are seller decisions on a pending
// proposal; completed is confirmed by either participant once accepted.
func (h *SwapsHandler) ResolveSwap(w http.ResponseWriter, r *http.Request, swapId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var resolution api.Resolution
	if err := json.NewDecoder(r.Body).Decode(&resolution); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var expected, decision models.SwapStatus
	switch resolution.Decision {
	case "accepted":
		expected, decision = models.SwapPending, models.SwapAccepted
	case "rejected":
		expected, decision = models.SwapPending, models.SwapRejected
	case "completed":
		expected, decision = models.SwapAccepted, models.SwapCompleted
	default:
		http.Error(w, fmt.Sprintf("Invalid decision %q: must be accepted, rejected or completed", resolution.Decision), http.StatusBadRequest)
		return
	}

	swap, err := h.Store.GetSwap(r.Context(), swapId)
	if err != nil {
		handlers.WriteStoreError(w, "resolve swap", err)
		return
	}

	product, err := h.Store.GetProduct(r.Context(), swap.ProductId)
	if err != nil {
		handlers.WriteStoreError(w, "resolve swap", err)
		return
	}

	switch decision {
	case models.SwapAccepted, models.SwapRejected:
		if product.SellerId != caller.UserID {
			handlers.WriteStoreError(w, "resolve swap", fmt.Errorf("only the seller can resolve a swap proposal: %w", storage.ErrPermissionDenied))
			return
		}
	case models.SwapCompleted:
		if caller.UserID != product.SellerId && caller.UserID != swap.ProposerId {
			handlers.WriteStoreError(w, "resolve swap", fmt.Errorf("only a swap participant can confirm completion: %w", storage.ErrPermissionDenied))
			return
		}
	}

	updatedSwap, err := h.Store.ResolveSwap(r.Context(), swapId, expected, decision)
	if err != nil {
		handlers.WriteStoreError(w, "resolve swap", err)
		return
	}

	switch updatedSwap.Status {
	case models.SwapAccepted:
		h.notify(r, updatedSwap, notifications.EventSwapAccepted, caller.UserID)
	case models.SwapCompleted:
		h.notify(r, updatedSwap, notifications.EventSwapCompleted, caller.UserID)
	}

	apiSwap := mapping.ToApiSwap(updatedSwap)
	handlers.WriteJSON(w, http.StatusOK, apiSwap)
}

// ListSwapsByProduct handles the logic for retrieving a product's swap
// proposals. The seller sees every proposal; anyone else only their own.
func (h *SwapsHandler) ListSwapsByProduct(w http.ResponseWriter, r *http.Request, productId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(r.Context(), productId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve swaps", err)
		return
	}

	proposerID := r.URL.Query().Get("proposer_id")
	if product.SellerId != caller.UserID && !caller.IsAdmin() {
		proposerID = caller.UserID
	}

	domainSwaps, err := h.Store.ListSwapsByProduct(r.Context(), productId, proposerID)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve swaps", err)
		return
	}

	apiSwaps := make([]*api.Swap, len(domainSwaps))
	for i, swap := range domainSwaps {
		apiSwaps[i] = mapping.ToApiSwap(&swap)
	}

	handlers.WriteJSON(w, http.StatusOK, apiSwaps)
}

// notify resolves the product conversation for a swap and appends the
// matching system message with the acting user as sender.
func (h *SwapsHandler) notify(r *http.Request, swap *models.Swap, kind notifications.EventKind, actorID string) {
	ctx := r.Context()

	product, err := h.Store.GetProduct(ctx, swap.ProductId)
	if err != nil {
		log.Printf("ERROR: failed to get product for swap notification: %v", err)
		return
	}

	chat, err := h.Store.ResolveOrCreateChat(ctx, &models.Chat{
		ProductId: swap.ProductId,
		BuyerId:   swap.ProposerId,
		SellerId:  product.SellerId,
	})
	if err != nil {
		log.Printf("ERROR: failed to resolve chat for swap notification: %v", err)
		return
	}

	if _, err := h.Notifier.Notify(ctx, notifications.Event{
		Kind:         kind,
		ChatID:       chat.Id,
		ActorID:      actorID,
		ProductTitle: product.Title,
		Note:         swap.Message,
	}); err != nil {
		log.Printf("ERROR: failed to append swap notification: %v", err)
	}
}
