package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"billing_gateway/internal/adapter/http/handlers"
	"billing_gateway/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockIBillingPaymentUseCase(ctrl)
	router := NewRouter(Handlers{
		Payments:      handlers.NewBillingPaymentHandler(mocks.NewMockICheckoutUseCase(ctrl), payments),
		Subscriptions: handlers.NewSubscriptionHandler(mocks.NewMockISubscriptionUseCase(ctrl), payments),
		Webhooks:      handlers.NewWebhookHandler(payments),
	})

	want := map[string]bool{
		"GET /v1/ping":                           false,
		"POST /v1/checkout/preferences":          false,
		"POST /v1/payments/pix":                  false,
		"GET /v1/payments":                       false,
		"GET /v1/payments/:id":                   false,
		"POST /v1/subscriptions":                 false,
		"GET /v1/subscriptions/:id":              false,
		"PATCH /v1/subscriptions/:id/cancel":     false,
		"PATCH /v1/subscriptions/:id/pause":      false,
		"PATCH /v1/subscriptions/:id/reactivate": false,
		"POST /v1/webhooks/mercadopago":          false,
		"GET /swagger/*any":                      false,
	}
	for _, r := range router.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, seen := range want {
		if !seen {
			t.Fatalf("route %s not registered", route)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from ping, got %d", w.Code)
	}
}
