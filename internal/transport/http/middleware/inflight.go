package middleware

import (
	"net/http"
	"sync"

	"adminrec/internal/transport/http/api"
)

// InflightGuard rejects a mutation while an identical one from the same actor
// is still being processed. This is the server-side answer to rapid repeated
// form submissions launching concurrent duplicate calls.
type InflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{active: make(map[string]struct{})}
}

func (g *InflightGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		key := actorKey(r) + " " + r.Method + " " + r.URL.Path
		if !g.acquire(key) {
			api.Fail(w, http.StatusConflict, "La operación anterior todavía está en curso")
			return
		}
		defer g.release(key)

		next.ServeHTTP(w, r)
	})
}

func (g *InflightGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

func (g *InflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
