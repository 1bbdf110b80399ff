package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateAssetSendsInputURL(t *testing.T) {
	var gotAuth string
	var gotBody createAssetRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/assets" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(VideoAssetInfo{AssetID: "asset-123", PlaybackID: "play-456"})
	}))
	defer srv.Close()

	client := NewVideoHostClient(srv.URL, "test-token", testLogger())
	info, err := client.CreateAsset(context.Background(), "https://cdn.example.com/video.mp4")
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if info.AssetID != "asset-123" || info.PlaybackID != "play-456" {
		t.Errorf("info = %+v", info)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotBody.Input != "https://cdn.example.com/video.mp4" {
		t.Errorf("request input = %q", gotBody.Input)
	}
}

func TestCreateAssetRejectsEmptyAssetID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(VideoAssetInfo{})
	}))
	defer srv.Close()

	client := NewVideoHostClient(srv.URL, "test-token", testLogger())
	if _, err := client.CreateAsset(context.Background(), "https://cdn.example.com/video.mp4"); err == nil {
		t.Fatal("expected error for response without asset id")
	}
}

func TestCreateAssetSurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "input url unreachable", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewVideoHostClient(srv.URL, "test-token", testLogger())
	_, err := client.CreateAsset(context.Background(), "https://cdn.example.com/video.mp4")
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
}

func TestDeleteAssetTreatsNotFoundAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/assets/asset-123" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewVideoHostClient(srv.URL, "test-token", testLogger())
	// A retried delete saga must be able to make progress past an asset the
	// host has already dropped.
	if err := client.DeleteAsset(context.Background(), "asset-123"); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
}

func TestDeleteAssetServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewVideoHostClient(srv.URL, "test-token", testLogger())
	if err := client.DeleteAsset(context.Background(), "asset-123"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
