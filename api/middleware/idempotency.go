package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/docksidelabs/leadrouter-backend/api/responses"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	pkgredis "github.com/docksidelabs/leadrouter-backend/pkg/redis"
)

const (
	defaultIdempotencyTTL  = 24 * time.Hour
	criticalIdempotencyTTL = 7 * 24 * time.Hour
)

// guardedRoute pairs a chi route pattern match with the TTL of its replay
// window. Assignment commits are guarded for a week; retried webhooks and
// bulk reassignments only need to survive the retry window of their callers.
type guardedRoute struct {
	method string
	match  func(pattern string) bool
	ttl    time.Duration
}

var guardedRoutes = []guardedRoute{
	{http.MethodPost, exactPath("/api/v1/webhooks/leads"), defaultIdempotencyTTL},
	{http.MethodPost, exactPath("/api/admin/v1/routing/leads/reassign"), defaultIdempotencyTTL},
	{http.MethodPost, pathAround("/api/admin/v1/routing/leads/", "/assign"), criticalIdempotencyTTL},
	{http.MethodPost, pathAround("/api/admin/v1/routing/leads/", "/reassign"), criticalIdempotencyTTL},
}

func exactPath(path string) func(string) bool {
	return func(pattern string) bool { return pattern == path }
}

func pathAround(prefix, suffix string) func(string) bool {
	return func(pattern string) bool {
		return strings.HasPrefix(pattern, prefix) && strings.HasSuffix(pattern, suffix)
	}
}

// storedResponse is the replayable snapshot persisted per idempotency key.
// The request hash pins the key to one request body; reuse with a different
// body is rejected rather than replayed.
type storedResponse struct {
	Status      int               `json:"status"`
	Body        string            `json:"body"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequestHash string            `json:"request_hash"`
}

// Idempotency replays the stored response for a seen Idempotency-Key on
// guarded routes, and captures the response for first-time keys.
func Idempotency(store pkgredis.IdempotencyStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ttl, guarded := guardTTL(r)
			if !guarded || store == nil {
				next.ServeHTTP(w, r)
				return
			}

			idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
			if idemKey == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key header required"))
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			sum := sha256.Sum256(body)
			requestHash := base64.StdEncoding.EncodeToString(sum[:])
			key := store.IdempotencyKey(requestScope(r), idemKey)

			if done := replayIfSeen(w, r, store, logg, key, requestHash); done {
				return
			}

			rec := &replayRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			snapshot := storedResponse{
				Status:      rec.statusOrOK(),
				Body:        base64.StdEncoding.EncodeToString(rec.body.Bytes()),
				RequestHash: requestHash,
			}
			if ct := rec.Header().Get("Content-Type"); ct != "" {
				snapshot.Headers = map[string]string{"Content-Type": ct}
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "marshal idempotency record", err)
				}
				return
			}
			if _, err := store.SetNX(r.Context(), key, string(payload), ttl); err != nil && logg != nil {
				logg.Error(r.Context(), "persist idempotency record", err)
			}
		})
	}
}

// replayIfSeen serves the stored response when the key exists. Returns true
// when the request has been fully answered.
func replayIfSeen(w http.ResponseWriter, r *http.Request, store pkgredis.IdempotencyStore, logg *logger.Logger, key, requestHash string) bool {
	stored, err := store.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false
		}
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check idempotency"))
		return true
	}
	if stored == "" {
		return false
	}

	var snapshot storedResponse
	if err := json.Unmarshal([]byte(stored), &snapshot); err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode idempotency record"))
		return true
	}
	if snapshot.RequestHash != requestHash {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeIdempotency, "idempotency key reused with different request body"))
		return true
	}

	if ct := snapshot.Headers["Content-Type"]; ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(snapshot.Status)
	if decoded, err := base64.StdEncoding.DecodeString(snapshot.Body); err == nil {
		_, _ = w.Write(decoded)
	}
	return true
}

// guardTTL resolves the request's chi route pattern against the guarded
// route table.
func guardTTL(r *http.Request) (time.Duration, bool) {
	pattern := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		pattern = rctx.RoutePattern()
	}
	for _, route := range guardedRoutes {
		if route.method == r.Method && route.match(pattern) {
			return route.ttl, true
		}
	}
	return 0, false
}

// requestScope namespaces stored keys per caller and route so two users, or
// two routes, can reuse the same Idempotency-Key without colliding.
func requestScope(r *http.Request) string {
	return strings.Join([]string{
		UserIDFromContext(r.Context()),
		AccountIDFromContext(r.Context()),
		r.Method,
		r.URL.Path,
	}, "|")
}

type replayRecorder struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (r *replayRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *replayRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *replayRecorder) statusOrOK() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
