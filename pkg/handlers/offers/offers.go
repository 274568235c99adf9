package offers

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

// OffersHandler holds the dependencies for offer-related handlers.
type OffersHandler struct {
	Store    storage.ApiStore
	Notifier notifications.Notifier
}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler(store storage.ApiStore, notifier notifications.Notifier) *OffersHandler {
	return &OffersHandler{Store: store, Notifier: notifier}
}

// SubmitOffer handles the logic for submitting a cash offer on a product.
func (h *OffersHandler) SubmitOffer(w http.ResponseWriter, r *http.Request, productId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}
	if !caller.Verified {
		handlers.WriteStoreError(w, "submit offer", fmt.Errorf("account verification required to make offers: %w", storage.ErrPermissionDenied))
		return
	}

	var newOffer api.NewOffer
	if err := json.NewDecoder(r.Body).Decode(&newOffer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	domainOffer := mapping.ToDomainNewOffer(productId, caller.UserID, &newOffer)

	createdOffer, err := h.Store.CreateOffer(r.Context(), domainOffer)
	if err != nil {
		handlers.WriteStoreError(w, "submit offer", err)
		return
	}

	// Narrate the offer into the product conversation. A failed
	// notification never fails the submission itself.
	h.notify(r, createdOffer, notifications.EventOfferSubmitted, caller.UserID)

	apiOffer := mapping.ToApiOffer(createdOffer)
	handlers.WriteJSON(w, http.StatusCreated, apiOffer)
}

// ResolveOffer handles the seller's accept or reject decision on an offer.
func (h *OffersHandler) ResolveOffer(w http.ResponseWriter, r *http.Request, offerId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var resolution api.Resolution
	if err := json.NewDecoder(r.Body).Decode(&resolution); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var decision models.OfferStatus
	switch resolution.Decision {
	case "accepted":
		decision = models.OfferAccepted
	case "rejected":
		decision = models.OfferRejected
	default:
		http.Error(w, fmt.Sprintf("Invalid decision %q: must be accepted or rejected", resolution.Decision), http.StatusBadRequest)
		return
	}

	offer, err := h.Store.GetOffer(r.Context(), offerId)
	if err != nil {
		handlers.WriteStoreError(w, "resolve offer", err)
		return
	}

	product, err := h.Store.GetProduct(r.Context(), offer.ProductId)
	if err != nil {
		handlers.WriteStoreError(w, "resolve offer", err)
		return
	}
	if product.SellerId != caller.UserID {
		handlers.WriteStoreError(w, "resolve offer", fmt.Errorf("only the seller can resolve an offer: %w", storage.ErrPermissionDenied))
		return
	}

	updatedOffer, err := h.Store.ResolveOffer(r.Context(), offerId, decision)
	if err != nil {
		handlers.WriteStoreError(w, "resolve offer", err)
		return
	}

	if updatedOffer.Status == models.OfferAccepted {
		h.notify(r, updatedOffer, notifications.EventOfferAccepted, caller.UserID)
	}

	apiOffer := mapping.ToApiOffer(updatedOffer)
	handlers.WriteJSON(w, http.StatusOK, apiOffer)
}

// ListOffersByProduct handles the logic for retrieving a product's offers.
// The seller sees every offer; anyone else only sees their own.
func (h *OffersHandler) ListOffersByProduct(w http.ResponseWriter, r *http.Request, productId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(r.Context(), productId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve offers", err)
		return
	}

	buyerID := r.URL.Query().Get("buyer_id")
	if product.SellerId != caller.UserID && !caller.IsAdmin() {
		buyerID = caller.UserID
	}

	domainOffers, err := h.Store.ListOffersByProduct(r.Context(), productId, buyerID)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve offers", err)
		return
	}

	apiOffers := make([]*api.Offer, len(domainOffers))
	for i, offer := range domainOffers {
		apiOffers[i] = mapping.ToApiOffer(&offer)
	}

	handlers.WriteJSON(w, http.StatusOK, apiOffers)
}

// notify resolves the product conversation for an offer and appends the
// matching system message with the acting user as sender.
func (h *OffersHandler) notify(r *http.Request, offer *models.Offer, kind notifications.EventKind, actorID string) {
	ctx := r.Context()

	product, err := h.Store.GetProduct(ctx, offer.ProductId)
	if err != nil {
		log.Printf("ERROR: failed to get product for offer notification: %v", err)
		return
	}

	chat, err := h.Store.ResolveOrCreateChat(ctx, &models.Chat{
		ProductId: offer.ProductId,
		BuyerId:   offer.BuyerId,
		SellerId:  product.SellerId,
	})
	if err != nil {
		log.Printf("ERROR: failed to resolve chat for offer notification: %v", err)
		return
	}

	if _, err := h.Notifier.Notify(ctx, notifications.Event{
		Kind:         kind,
		ChatID:       chat.Id,
		ActorID:      actorID,
		ProductTitle: product.Title,
		Amount:       offer.OfferAmount,
	}); err != nil {
		log.Printf("ERROR: failed to append offer notification: %v", err)
	}
}
