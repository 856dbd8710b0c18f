package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KarmaGirafe/chicken-hot-system/internal/llm"
	"github.com/KarmaGirafe/chicken-hot-system/internal/menu"

	"github.com/gin-gonic/gin"
)

func setupOrderTestRouter(repo Repository, extractor llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(
		repo,
		NewCallCache(time.Minute),
		extractor,
		&stubQuoter{},
		menu.NewCatalog(),
		nil,
	)
	handler := NewHandler(service)

	r.POST("/webhook/:provider", handler.HandleWebhook)
	r.GET("/api/orders", handler.ListOrders)
	r.PUT("/api/order/:id/status", handler.UpdateStatus)

	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/retell", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_MissingTranscript(t *testing.T) {
	repo := NewInMemoryRepository()
	r := setupOrderTestRouter(repo, &stubExtractor{})

	w := postWebhook(t, r, `{"call": {"call_id": "c-1", "from_number": "+33600000001"}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "error" || resp["message"] != "no transcript" {
		t.Errorf("unexpected body: %v", resp)
	}

	orders, _ := repo.List(context.Background())
	if len(orders) != 0 {
		t.Error("nothing must be persisted without a transcript")
	}
}

func TestWebhook_SuccessAndDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	extractor := &stubExtractor{
		raw: &llm.RawOrder{
			CallType:    "commande",
			ServiceType: "À emporter",
			Items: []llm.RawItem{
				{Name: "Menu Curry", Price: 8.90, Quantity: 1},
			},
		},
	}
	r := setupOrderTestRouter(repo, extractor)

	body := `{"call": {"call_id": "c-2", "transcript": "un curry à emporter", "from_number": "+33600000001"}}`

	w := postWebhook(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "success" {
		t.Fatalf("expected success, got %v", resp)
	}
	if resp["order_id"] == "" || resp["order_id"] == nil {
		t.Error("expected an order_id")
	}
	if resp["total"].(float64) != 8.90 {
		t.Errorf("expected total 8.90, got %v", resp["total"])
	}

	// Same webhook delivered again.
	w = postWebhook(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate, got %d", w.Code)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "duplicate" || resp["call_id"] != "c-2" {
		t.Errorf("expected duplicate response, got %v", resp)
	}

	orders, _ := repo.List(context.Background())
	if len(orders) != 1 {
		t.Errorf("expected exactly 1 order, got %d", len(orders))
	}
}

func TestListOrders(t *testing.T) {
	repo := NewInMemoryRepository()
	extractor := &stubExtractor{raw: &llm.RawOrder{CallType: "commande"}}
	r := setupOrderTestRouter(repo, extractor)

	postWebhook(t, r, `{"call": {"call_id": "c-3", "transcript": "un curry"}}`)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Orders map[string]PersistedOrder `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(resp.Orders))
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := NewInMemoryRepository()
	extractor := &stubExtractor{raw: &llm.RawOrder{CallType: "commande"}}
	r := setupOrderTestRouter(repo, extractor)

	w := postWebhook(t, r, `{"call": {"call_id": "c-4", "transcript": "un curry"}}`)
	var created map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	id := created["order_id"].(string)

	do := func(orderID, status string) *httptest.ResponseRecorder {
		body := bytes.NewBufferString(`{"status": "` + status + `"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/order/"+orderID+"/status", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do(id, StatusReady); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	orders, _ := repo.List(context.Background())
	if orders[id].Status != StatusReady {
		t.Errorf("expected status ready, got %s", orders[id].Status)
	}

	if w := do(id, "burnt"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
	if w := do("missing", StatusReady); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown order, got %d", w.Code)
	}
}
