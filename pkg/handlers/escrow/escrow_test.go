package escrow

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/identity"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/notifications"
	notification_mocks "github.com/chris/campus-market/pkg/notifications/mocks"
	scheduler_mocks "github.com/chris/campus-market/pkg/scheduler/mocks"
	"github.com/chris/campus-market/pkg/storage"
	storage_mocks "github.com/chris/campus-market/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func requestAs(method, target string, body []byte, caller identity.Identity) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(identity.NewContext(req.Context(), caller))
}

var (
	buyer  = identity.Identity{UserID: "buyer-1", Role: identity.RoleStudent, Verified: true}
	admin  = identity.Identity{UserID: "admin-1", Role: identity.RoleAdmin, Verified: true}
	seller = identity.Identity{UserID: "seller-1", Role: identity.RoleStudent, Verified: true}
)

func TestInitiateEscrow(t *testing.T) {
	acceptedOffer := &models.Offer{Id: "offer-1", ProductId: "prod-1", BuyerId: "buyer-1", OfferAmount: 400, Status: models.OfferAccepted}
	product := &models.Product{Id: "prod-1", SellerId: "seller-1", Title: "Bike", TransactionType: models.CASH, Status: models.ACTIVE}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockSettlement := new(storage_mocks.SettlementStore)
		mockScheduler := new(scheduler_mocks.ReminderScheduler)
		handler := NewEscrowHandler(mockStorage, mockSettlement, mockScheduler, &notifications.NoOpNotifier{})

		createdEscrow := &models.EscrowTransaction{
			Id:        "escrow-1",
			OfferId:   "offer-1",
			ProductId: "prod-1",
			BuyerId:   "buyer-1",
			SellerId:  "seller-1",
			Amount:    400,
			Status:    models.EscrowHeld,
		}

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(acceptedOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("CreateEscrow", mock.Anything, mock.AnythingOfType("*models.EscrowTransaction")).Return(createdEscrow, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.Anything).Return(&models.Chat{Id: "chat-1"}, nil)
		mockScheduler.On("ScheduleEscrowReminder", mock.Anything, mock.AnythingOfType("*api.Escrow"), ReminderDelay).Return(nil)

		req := requestAs(http.MethodPost, "/offers/offer-1/escrow", nil, buyer)
		rr := httptest.NewRecorder()

		handler.InitiateEscrow(rr, req, "offer-1")

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
		mockScheduler.AssertExpectations(t)
	})

	t.Run("Non Buyer", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(acceptedOffer, nil)

		req := requestAs(http.MethodPost, "/offers/offer-1/escrow", nil, seller)
		rr := httptest.NewRecorder()

		handler.InitiateEscrow(rr, req, "offer-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "permission denied")
		mockStorage.AssertNotCalled(t, "CreateEscrow")
	})

	t.Run("Offer Not Accepted", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		pendingOffer := *acceptedOffer
		pendingOffer.Status = models.OfferPending
		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(&pendingOffer, nil)

		req := requestAs(http.MethodPost, "/offers/offer-1/escrow", nil, buyer)
		rr := httptest.NewRecorder()

		handler.InitiateEscrow(rr, req, "offer-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateEscrow")
	})

	t.Run("Duplicate Escrow Surfaces Existing Hold", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockScheduler := new(scheduler_mocks.ReminderScheduler)
		handler := NewEscrowHandler(mockStorage, nil, mockScheduler, &notifications.NoOpNotifier{})

		existingEscrow := &models.EscrowTransaction{Id: "escrow-9", OfferId: "offer-1", ProductId: "prod-1", BuyerId: "buyer-1", SellerId: "seller-1", Amount: 400, Status: models.EscrowHeld}

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(acceptedOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("CreateEscrow", mock.Anything, mock.Anything).Return(nil, storage.ErrConflict)
		mockStorage.On("GetEscrowByOffer", mock.Anything, "offer-1").Return(existingEscrow, nil)

		req := requestAs(http.MethodPost, "/offers/offer-1/escrow", nil, buyer)
		rr := httptest.NewRecorder()

		handler.InitiateEscrow(rr, req, "offer-1")

		assert.Equal(t, http.StatusConflict, rr.Code)

		var returnedEscrow api.Escrow
		json.Unmarshal(rr.Body.Bytes(), &returnedEscrow)
		assert.Equal(t, "escrow-9", returnedEscrow.Id)

		mockScheduler.AssertNotCalled(t, "ScheduleEscrowReminder")
		mockStorage.AssertExpectations(t)
	})

	t.Run("Duplicate Escrow With Lookup Failure", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(acceptedOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("CreateEscrow", mock.Anything, mock.Anything).Return(nil, storage.ErrConflict)
		mockStorage.On("GetEscrowByOffer", mock.Anything, "offer-1").Return(nil, storage.ErrNotFound)

		req := requestAs(http.MethodPost, "/offers/offer-1/escrow", nil, buyer)
		rr := httptest.NewRecorder()

		handler.InitiateEscrow(rr, req, "offer-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestDecideEscrow(t *testing.T) {
	heldEscrow := &models.EscrowTransaction{Id: "escrow-1", OfferId: "offer-1", ProductId: "prod-1", BuyerId: "buyer-1", SellerId: "seller-1", Status: models.EscrowHeld}

	t.Run("Approve", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockNotifier := new(notification_mocks.Notifier)
		handler := NewEscrowHandler(mockStorage, nil, nil, mockNotifier)

		approvedEscrow := *heldEscrow
		approvedEscrow.Status = models.EscrowAdminApproved

		mockStorage.On("DecideEscrow", mock.Anything, "escrow-1", models.EscrowAdminApproved).Return(&approvedEscrow, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.Anything).Return(&models.Chat{Id: "chat-1"}, nil)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(event notifications.Event) bool {
			return event.Kind == notifications.EventEscrowApproved
		})).Return(&models.Message{}, nil)

		body, _ := json.Marshal(&api.EscrowDecision{Decision: "approved"})
		req := requestAs(http.MethodPost, "/escrow/escrow-1/decision", body, admin)
		rr := httptest.NewRecorder()

		handler.DecideEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Non Admin", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		body, _ := json.Marshal(&api.EscrowDecision{Decision: "approved"})
		req := requestAs(http.MethodPost, "/escrow/escrow-1/decision", body, buyer)
		rr := httptest.NewRecorder()

		handler.DecideEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "DecideEscrow")
	})

	t.Run("Already Decided", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		mockStorage.On("DecideEscrow", mock.Anything, "escrow-1", models.EscrowRejected).Return(nil, storage.ErrConflict)

		body, _ := json.Marshal(&api.EscrowDecision{Decision: "rejected"})
		req := requestAs(http.MethodPost, "/escrow/escrow-1/decision", body, admin)
		rr := httptest.NewRecorder()

		handler.DecideEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestCompleteEscrow(t *testing.T) {
	approvedEscrow := &models.EscrowTransaction{Id: "escrow-1", OfferId: "offer-1", ProductId: "prod-1", BuyerId: "buyer-1", SellerId: "seller-1", Status: models.EscrowAdminApproved}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockSettlement := new(storage_mocks.SettlementStore)
		handler := NewEscrowHandler(mockStorage, mockSettlement, nil, &notifications.NoOpNotifier{})

		completedEscrow := *approvedEscrow
		completedEscrow.Status = models.EscrowCompleted

		mockStorage.On("GetEscrow", mock.Anything, "escrow-1").Return(approvedEscrow, nil)
		mockSettlement.On("CompleteEscrow", mock.Anything, approvedEscrow).Return(&completedEscrow, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(&models.Product{Id: "prod-1", Title: "Bike"}, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.Anything).Return(&models.Chat{Id: "chat-1"}, nil)

		req := requestAs(http.MethodPost, "/escrow/escrow-1/completion", nil, buyer)
		rr := httptest.NewRecorder()

		handler.CompleteEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
		mockSettlement.AssertExpectations(t)
	})

	t.Run("Non Buyer", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockSettlement := new(storage_mocks.SettlementStore)
		handler := NewEscrowHandler(mockStorage, mockSettlement, nil, &notifications.NoOpNotifier{})

		mockStorage.On("GetEscrow", mock.Anything, "escrow-1").Return(approvedEscrow, nil)

		req := requestAs(http.MethodPost, "/escrow/escrow-1/completion", nil, seller)
		rr := httptest.NewRecorder()

		handler.CompleteEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockSettlement.AssertNotCalled(t, "CompleteEscrow")
	})

	t.Run("Not Approved Yet", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockSettlement := new(storage_mocks.SettlementStore)
		handler := NewEscrowHandler(mockStorage, mockSettlement, nil, &notifications.NoOpNotifier{})

		heldEscrow := *approvedEscrow
		heldEscrow.Status = models.EscrowHeld
		mockStorage.On("GetEscrow", mock.Anything, "escrow-1").Return(&heldEscrow, nil)
		mockSettlement.On("CompleteEscrow", mock.Anything, &heldEscrow).Return(nil, storage.ErrConflict)

		req := requestAs(http.MethodPost, "/escrow/escrow-1/completion", nil, buyer)
		rr := httptest.NewRecorder()

		handler.CompleteEscrow(rr, req, "escrow-1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockSettlement.AssertExpectations(t)
	})
}

func TestListEscrows(t *testing.T) {
	t.Run("Admin Only", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		req := requestAs(http.MethodGet, "/escrow", nil, buyer)
		rr := httptest.NewRecorder()

		handler.ListEscrows(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "ListEscrowsByStatus")
	})

	t.Run("Filters By Status", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewEscrowHandler(mockStorage, nil, nil, &notifications.NoOpNotifier{})

		mockStorage.On("ListEscrowsByStatus", mock.Anything, models.EscrowHeld).Return([]models.EscrowTransaction{}, nil)

		req := requestAs(http.MethodGet, "/escrow?status=held", nil, admin)
		rr := httptest.NewRecorder()

		handler.ListEscrows(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
