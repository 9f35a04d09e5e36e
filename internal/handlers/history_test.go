package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"mdaudit/internal/storage"
	"mdaudit/internal/storage/mocks"
)

func TestHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRunStore(ctrl)
	store.EXPECT().
		ListRecent(gomock.Any(), 20).
		Return([]storage.RunRecord{{ID: "r1", Percentage: 50}}, nil)

	handler := NewHistoryHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got HistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got.Runs) != 1 || got.Runs[0].ID != "r1" {
		t.Errorf("response = %+v", got)
	}
}

func TestHistoryHandler_LimitParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRunStore(ctrl)
	store.EXPECT().
		ListRecent(gomock.Any(), 5).
		Return(nil, nil)

	handler := NewHistoryHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// nil runs encode as an empty list, not null
	var got HistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.Runs == nil {
		t.Error("Runs = null, want []")
	}
}

func TestHistoryHandler_LimitCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRunStore(ctrl)
	store.EXPECT().
		ListRecent(gomock.Any(), 100).
		Return(nil, nil)

	handler := NewHistoryHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=5000", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHistoryHandler_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRunStore(ctrl)

	handler := NewHistoryHandler(store)

	for _, limit := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/history?limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", limit, rec.Code)
		}
	}
}
