package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		expectError    bool
		expectStatus   bool
	}{
		{
			name: "Successful fetch",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, "<html><head><title>Test</title></head></html>")
			},
		},
		{
			name: "404 response",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectError:  true,
			expectStatus: true,
		},
		{
			name: "500 response",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectError:  true,
			expectStatus: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			page, err := New(5*time.Second, 0).Fetch(context.Background(), server.URL)

			if tt.expectError {
				if err == nil {
					t.Fatal("Fetch() expected error but got none")
				}
				if tt.expectStatus && !errors.Is(err, ErrUnexpectedStatus) {
					t.Errorf("Fetch() error = %v, want ErrUnexpectedStatus", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if page.Markup == "" {
				t.Error("Fetch() returned empty markup")
			}
			if page.Elapsed < 0 {
				t.Errorf("Fetch() elapsed = %v, want >= 0", page.Elapsed)
			}
			if page.StatusCode != http.StatusOK {
				t.Errorf("Fetch() status = %d, want 200", page.StatusCode)
			}
		})
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html></html>")
	}))
	defer server.Close()

	if _, err := New(time.Second, 0).Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if got != userAgent {
		t.Errorf("User-Agent = %q, want %q", got, userAgent)
	}
}

func TestFetchTruncatesLargeBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("a", 1000))
	}))
	defer server.Close()

	page, err := New(time.Second, 100).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if len(page.Markup) != 100 {
		t.Errorf("len(Markup) = %d, want 100", len(page.Markup))
	}
}

func TestFetchHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(5*time.Second, 0).Fetch(ctx, server.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	if _, err := New(time.Second, 0).Fetch(context.Background(), "://bad"); err == nil {
		t.Error("Fetch() expected error for malformed URL")
	}
}
