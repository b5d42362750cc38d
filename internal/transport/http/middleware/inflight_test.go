package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestInflightGuardRejectsConcurrentDuplicate(t *testing.T) {
	guard := NewInflightGuard()
	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once

	handler := guard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedOnce.Do(func() { close(started) })
		<-release
		w.WriteHeader(http.StatusCreated)
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	firstRec := httptest.NewRecorder()
	go func() {
		defer wg.Done()
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		handler.ServeHTTP(firstRec, req)
	}()

	<-started

	secondRec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/", nil)
	req.RemoteAddr = "10.0.0.1:4001"
	handler.ServeHTTP(secondRec, req)
	if secondRec.Code != http.StatusConflict {
		t.Fatalf("expected duplicate submission to get 409, got %d", secondRec.Code)
	}

	close(release)
	wg.Wait()
	if firstRec.Code != http.StatusCreated {
		t.Fatalf("expected first submission to succeed, got %d", firstRec.Code)
	}

	// once the first finished, the same mutation may run again
	thirdRec := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/attendance/", nil)
	req.RemoteAddr = "10.0.0.1:4002"
	handler.ServeHTTP(thirdRec, req)
	if thirdRec.Code != http.StatusCreated {
		t.Fatalf("expected retry after completion to succeed, got %d", thirdRec.Code)
	}
}

func TestInflightGuardIgnoresReads(t *testing.T) {
	guard := NewInflightGuard()
	handler := guard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/requests/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected reads to pass, got %d", rec.Code)
		}
	}
}
