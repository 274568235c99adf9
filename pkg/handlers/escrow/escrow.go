package escrow

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/handlers"
	"github.com/chris/campus-market/pkg/mapping"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/notifications"
	"github.com/chris/campus-market/pkg/scheduler"
	"github.com/chris/campus-market/pkg/storage"
)

// ReminderDelay is how long after initiation an escrow reminder fires if
// no admin decision has landed.
const ReminderDelay = 15 * time.Minute

// EscrowHandler holds the dependencies for escrow-related handlers. The
// privileged settlement store is separate from the general store so that
// only the completion path can mark products sold.
type EscrowHandler struct {
	Store      storage.ApiStore
	Settlement storage.SettlementStore
	Scheduler  scheduler.ReminderScheduler
	Notifier   notifications.Notifier
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(store storage.ApiStore, settlement storage.SettlementStore, sched scheduler.ReminderScheduler, notifier notifications.Notifier) *EscrowHandler {
	return &EscrowHandler{Store: store, Settlement: settlement, Scheduler: sched, Notifier: notifier}
}

// InitiateEscrow handles the buyer's request to place an accepted offer
// into escrow. The amount and parties are snapshotted from the offer at
// this point; later edits to the listing do not affect the hold.
func (h *EscrowHandler) InitiateEscrow(w http.ResponseWriter, r *http.Request, offerId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}
	if !caller.Verified {
		handlers.WriteStoreError(w, "initiate escrow", fmt.Errorf("account verification required to use escrow: %w", storage.ErrPermissionDenied))
		return
	}

	offer, err := h.Store.GetOffer(r.Context(), offerId)
	if err != nil {
		handlers.WriteStoreError(w, "initiate escrow", err)
		return
	}
	if offer.BuyerId != caller.UserID {
		handlers.WriteStoreError(w, "initiate escrow", fmt.Errorf("only the buyer can initiate escrow: %w", storage.ErrPermissionDenied))
		return
	}
	if offer.Status != models.OfferAccepted {
		http.Error(w, "Escrow requires an accepted offer", http.StatusConflict)
		return
	}

	product, err := h.Store.GetProduct(r.Context(), offer.ProductId)
	if err != nil {
		handlers.WriteStoreError(w, "initiate escrow", err)
		return
	}

	domainEscrow := &models.EscrowTransaction{
		OfferId:         offer.Id,
		ProductId:       offer.ProductId,
		BuyerId:         offer.BuyerId,
		SellerId:        product.SellerId,
		Amount:          offer.OfferAmount,
		TransactionType: product.TransactionType,
	}

	createdEscrow, err := h.Store.CreateEscrow(r.Context(), domainEscrow)
	if err != nil {
		// A lost conditional put means a hold already exists for this
		// offer. The conflict response carries the existing hold so
		// the client can link to it.
		if errors.Is(err, storage.ErrConflict) {
			if existing, getErr := h.Store.GetEscrowByOffer(r.Context(), offer.Id); getErr == nil {
				handlers.WriteJSON(w, http.StatusConflict, mapping.ToApiEscrow(existing))
				return
			}
		}
		handlers.WriteStoreError(w, "initiate escrow", err)
		return
	}

	// If the hold was recorded, enqueue the admin reminder.
	if h.Scheduler != nil {
		if err := h.Scheduler.ScheduleEscrowReminder(r.Context(), mapping.ToApiEscrow(createdEscrow), ReminderDelay); err != nil {
			log.Printf("CRITICAL: escrow %s created but reminder failed to enqueue: %v", createdEscrow.Id, err)
		}
	}

	h.notify(r, createdEscrow, notifications.EventEscrowInitiated, caller.UserID, product.Title)

	apiEscrow := mapping.ToApiEscrow(createdEscrow)
	handlers.WriteJSON(w, http.StatusCreated, apiEscrow)
}

// DecideEscrow handles an admin's approve or reject decision on a held
// escrow.
func (h *EscrowHandler) DecideEscrow(w http.ResponseWriter, r *http.Request, escrowId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		handlers.WriteStoreError(w, "decide escrow", fmt.Errorf("only an admin can decide an escrow: %w", storage.ErrPermissionDenied))
		return
	}

	var escrowDecision api.EscrowDecision
	if err := json.NewDecoder(r.Body).Decode(&escrowDecision); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var decision models.EscrowStatus
	switch escrowDecision.Decision {
	case "approved":
		decision = models.EscrowAdminApproved
	case "rejected":
		decision = models.EscrowRejected
	default:
		http.Error(w, fmt.Sprintf("Invalid decision %q: must be approved or rejected", escrowDecision.Decision), http.StatusBadRequest)
		return
	}

	updatedEscrow, err := h.Store.DecideEscrow(r.Context(), escrowId, decision)
	if err != nil {
		handlers.WriteStoreError(w, "decide escrow", err)
		return
	}

	kind := notifications.EventEscrowApproved
	if updatedEscrow.Status == models.EscrowRejected {
		kind = notifications.EventEscrowRejected
	}
	h.notify(r, updatedEscrow, kind, caller.UserID, "")

	apiEscrow := mapping.ToApiEscrow(updatedEscrow)
	handlers.WriteJSON(w, http.StatusOK, apiEscrow)
}

// CompleteEscrow handles the buyer's confirmation that an approved escrow
// is done. Settlement marks the product sold in the same write.
func (h *EscrowHandler) CompleteEscrow(w http.ResponseWriter, r *http.Request, escrowId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	domainEscrow, err := h.Store.GetEscrow(r.Context(), escrowId)
	if err != nil {
		handlers.WriteStoreError(w, "complete escrow", err)
		return
	}
	if domainEscrow.BuyerId != caller.UserID {
		handlers.WriteStoreError(w, "complete escrow", fmt.Errorf("only the buyer can confirm completion: %w", storage.ErrPermissionDenied))
		return
	}

	completedEscrow, err := h.Settlement.CompleteEscrow(r.Context(), domainEscrow)
	if err != nil {
		handlers.WriteStoreError(w, "complete escrow", err)
		return
	}

	title := ""
	if product, err := h.Store.GetProduct(r.Context(), completedEscrow.ProductId); err == nil {
		title = product.Title
	} else {
		log.Printf("ERROR: failed to get product for completion notification: %v", err)
	}
	h.notify(r, completedEscrow, notifications.EventEscrowCompleted, caller.UserID, title)

	apiEscrow := mapping.ToApiEscrow(completedEscrow)
	handlers.WriteJSON(w, http.StatusOK, apiEscrow)
}

// ListEscrows handles the admin review queue. An empty status query
// returns every escrow, newest first.
func (h *EscrowHandler) ListEscrows(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		handlers.WriteStoreError(w, "retrieve escrows", fmt.Errorf("only an admin can list escrows: %w", storage.ErrPermissionDenied))
		return
	}

	status := models.EscrowStatus(r.URL.Query().Get("status"))

	domainEscrows, err := h.Store.ListEscrowsByStatus(r.Context(), status)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve escrows", err)
		return
	}

	apiEscrows := make([]*api.Escrow, len(domainEscrows))
	for i, escrow := range domainEscrows {
		apiEscrows[i] = mapping.ToApiEscrow(&escrow)
	}

	handlers.WriteJSON(w, http.StatusOK, apiEscrows)
}

// notify resolves the conversation behind an escrow's offer and appends
// the matching system message.
func (h *EscrowHandler) notify(r *http.Request, escrow *models.EscrowTransaction, kind notifications.EventKind, actorID, productTitle string) {
	ctx := r.Context()

	chat, err := h.Store.ResolveOrCreateChat(ctx, &models.Chat{
		ProductId: escrow.ProductId,
		BuyerId:   escrow.BuyerId,
		SellerId:  escrow.SellerId,
	})
	if err != nil {
		log.Printf("ERROR: failed to resolve chat for escrow notification: %v", err)
		return
	}

	if _, err := h.Notifier.Notify(ctx, notifications.Event{
		Kind:         kind,
		ChatID:       chat.Id,
		ActorID:      actorID,
		ProductTitle: productTitle,
		Amount:       escrow.Amount,
	}); err != nil {
		log.Printf("ERROR: failed to append escrow notification: %v", err)
	}
}
