package offers

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
	"github.com/chris/campus-market/pkg/storage"
	storage_mocks "github.com/chris/campus-market/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func requestAs(method, target string, body []byte, caller identity.Identity) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(identity.NewContext(req.Context(), caller))
}

func TestSubmitOffer(t *testing.T) {
	buyer := identity.Identity{UserID: "buyer-1", Role: identity.RoleStudent, Verified: true}
	product := &models.Product{Id: "prod-1", SellerId: "seller-1", Title: "Bike", TransactionType: models.CASH, Status: models.ACTIVE}

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		createdOffer := &models.Offer{
			Id:          uuid.New().String(),
			ProductId:   "prod-1",
			BuyerId:     buyer.UserID,
			OfferAmount: 300,
			Status:      models.OfferPending,
		}

		mockStorage.On("CreateOffer", mock.Anything, mock.AnythingOfType("*models.Offer")).Return(createdOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.AnythingOfType("*models.Chat")).Return(&models.Chat{Id: "chat-1"}, nil)

		body, _ := json.Marshal(&api.NewOffer{Amount: 300})
		req := requestAs(http.MethodPost, "/products/prod-1/offers", body, buyer)
		rr := httptest.NewRecorder()

		handler.SubmitOffer(rr, req, "prod-1")

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Announces Offer In Chat", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockNotifier := new(notification_mocks.Notifier)
		handler := NewOffersHandler(mockStorage, mockNotifier)

		createdOffer := &models.Offer{Id: "offer-1", ProductId: "prod-1", BuyerId: buyer.UserID, OfferAmount: 300, Status: models.OfferPending}

		mockStorage.On("CreateOffer", mock.Anything, mock.Anything).Return(createdOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.Anything).Return(&models.Chat{Id: "chat-1"}, nil)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(event notifications.Event) bool {
			return event.Kind == notifications.EventOfferSubmitted && event.ChatID == "chat-1" && event.Amount == 300
		})).Return(&models.Message{}, nil)

		body, _ := json.Marshal(&api.NewOffer{Amount: 300})
		req := requestAs(http.MethodPost, "/products/prod-1/offers", body, buyer)
		rr := httptest.NewRecorder()

		handler.SubmitOffer(rr, req, "prod-1")

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Unverified Buyer", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		unverified := identity.Identity{UserID: "buyer-1", Role: identity.RoleStudent}
		body, _ := json.Marshal(&api.NewOffer{Amount: 300})
		req := requestAs(http.MethodPost, "/products/prod-1/offers", body, unverified)
		rr := httptest.NewRecorder()

		handler.SubmitOffer(rr, req, "prod-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateOffer")
	})

	t.Run("Incompatible Listing", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		mockStorage.On("CreateOffer", mock.Anything, mock.Anything).Return(nil, storage.ErrIncompatibleListing)

		body, _ := json.Marshal(&api.NewOffer{Amount: 300})
		req := requestAs(http.MethodPost, "/products/prod-1/offers", body, buyer)
		rr := httptest.NewRecorder()

		handler.SubmitOffer(rr, req, "prod-1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestResolveOffer(t *testing.T) {
	seller := identity.Identity{UserID: "seller-1", Role: identity.RoleStudent, Verified: true}
	product := &models.Product{Id: "prod-1", SellerId: "seller-1", Title: "Bike", TransactionType: models.CASH, Status: models.ACTIVE}
	pendingOffer := &models.Offer{Id: "offer-1", ProductId: "prod-1", BuyerId: "buyer-1", OfferAmount: 300, Status: models.OfferPending}

	t.Run("Accept Announces Escrow Availability", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockNotifier := new(notification_mocks.Notifier)
		handler := NewOffersHandler(mockStorage, mockNotifier)

		acceptedOffer := *pendingOffer
		acceptedOffer.Status = models.OfferAccepted

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(pendingOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ResolveOffer", mock.Anything, "offer-1", models.OfferAccepted).Return(&acceptedOffer, nil)
		mockStorage.On("ResolveOrCreateChat", mock.Anything, mock.Anything).Return(&models.Chat{Id: "chat-1"}, nil)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(event notifications.Event) bool {
			return event.Kind == notifications.EventOfferAccepted && event.ActorID == seller.UserID
		})).Return(&models.Message{}, nil)

		body, _ := json.Marshal(&api.Resolution{Decision: "accepted"})
		req := requestAs(http.MethodPost, "/offers/offer-1/resolution", body, seller)
		rr := httptest.NewRecorder()

		handler.ResolveOffer(rr, req, "offer-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Reject Is Silent", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		mockNotifier := new(notification_mocks.Notifier)
		handler := NewOffersHandler(mockStorage, mockNotifier)

		rejectedOffer := *pendingOffer
		rejectedOffer.Status = models.OfferRejected

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(pendingOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ResolveOffer", mock.Anything, "offer-1", models.OfferRejected).Return(&rejectedOffer, nil)

		body, _ := json.Marshal(&api.Resolution{Decision: "rejected"})
		req := requestAs(http.MethodPost, "/offers/offer-1/resolution", body, seller)
		rr := httptest.NewRecorder()

		handler.ResolveOffer(rr, req, "offer-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockNotifier.AssertNotCalled(t, "Notify")
		mockStorage.AssertExpectations(t)
	})

	t.Run("Non Seller", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		mockStorage.On("GetOffer", mock.Anything, "offer-1").Return(pendingOffer, nil)
		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)

		intruder := identity.Identity{UserID: "someone-else", Role: identity.RoleStudent, Verified: true}
		body, _ := json.Marshal(&api.Resolution{Decision: "accepted"})
		req := requestAs(http.MethodPost, "/offers/offer-1/resolution", body, intruder)
		rr := httptest.NewRecorder()

		handler.ResolveOffer(rr, req, "offer-1")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "permission denied")
		mockStorage.AssertNotCalled(t, "ResolveOffer")
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		body, _ := json.Marshal(&api.Resolution{Decision: "maybe"})
		req := requestAs(http.MethodPost, "/offers/offer-1/resolution", body, seller)
		rr := httptest.NewRecorder()

		handler.ResolveOffer(rr, req, "offer-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ResolveOffer")
	})
}

func TestListOffersByProduct(t *testing.T) {
	product := &models.Product{Id: "prod-1", SellerId: "seller-1", Status: models.ACTIVE}

	t.Run("Seller Sees All", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ListOffersByProduct", mock.Anything, "prod-1", "").Return([]models.Offer{}, nil)

		seller := identity.Identity{UserID: "seller-1", Role: identity.RoleStudent, Verified: true}
		req := requestAs(http.MethodGet, "/products/prod-1/offers", nil, seller)
		rr := httptest.NewRecorder()

		handler.ListOffersByProduct(rr, req, "prod-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Buyer Is Narrowed To Own Offers", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := NewOffersHandler(mockStorage, &notifications.NoOpNotifier{})

		mockStorage.On("GetProduct", mock.Anything, "prod-1").Return(product, nil)
		mockStorage.On("ListOffersByProduct", mock.Anything, "prod-1", "buyer-1").Return([]models.Offer{}, nil)

		buyer := identity.Identity{UserID: "buyer-1", Role: identity.RoleStudent, Verified: true}
		req := requestAs(http.MethodGet, "/products/prod-1/offers?buyer_id=someone-else", nil, buyer)
		rr := httptest.NewRecorder()

		handler.ListOffersByProduct(rr, req, "prod-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
