package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/folio/pkg/endpoint"
)

func TestThrottleMiddlewarePerClient(t *testing.T) {
	m := MakeThrottleMiddleware(time.Minute, 2)
	calls := 0

	h := m.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		calls++

		return nil
	})

	request := func(ip string) *endpoint.ApiError {
		req := httptest.NewRequest("GET", "/experience/timeline", nil)
		req.RemoteAddr = ip + ":5555"

		return h(httptest.NewRecorder(), req)
	}

	for i := 0; i < 2; i++ {
		if err := request("10.0.0.1"); err != nil {
			t.Fatalf("request %d should pass: %v", i, err)
		}
	}

	if err := request("10.0.0.1"); err == nil || err.Status != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}

	if err := request("10.0.0.2"); err != nil {
		t.Fatalf("other clients should pass: %v", err)
	}

	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestThrottleMiddlewareIgnoresSpoofedForwardedFor(t *testing.T) {
	h := MakeThrottleMiddleware(time.Minute, 2).Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return nil
	})

	blocked := 0

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/experience/timeline", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))

		if err := h(httptest.NewRecorder(), req); err != nil {
			blocked++
		}
	}

	if blocked != 48 {
		t.Fatalf("expected 48 blocked requests, got %d", blocked)
	}
}

func TestThrottleMiddlewareTrustedProxy(t *testing.T) {
	proxy := netip.MustParsePrefix("10.0.0.0/8")

	h := MakeThrottleMiddleware(time.Minute, 1, proxy).Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return nil
	})

	request := func(client string) *endpoint.ApiError {
		req := httptest.NewRequest("GET", "/experience/timeline", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", client)

		return h(httptest.NewRecorder(), req)
	}

	if err := request("5.5.5.5"); err != nil {
		t.Fatalf("first client should pass: %v", err)
	}

	if err := request("6.6.6.6"); err != nil {
		t.Fatalf("second client behind the proxy should pass: %v", err)
	}

	if err := request("5.5.5.5"); err == nil || err.Status != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for repeated client, got %v", err)
	}
}

func TestThrottleMiddlewareWithoutLimiter(t *testing.T) {
	h := ThrottleMiddleware{}.Handle(func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		return nil
	})

	if err := h(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
