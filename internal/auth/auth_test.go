package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passHandler counts how often the protected handler runs.
type passHandler struct{ calls int }

func (h *passHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.calls++
	w.WriteHeader(http.StatusNoContent)
}

func serve(t *testing.T, check Check, headers map[string]string) (*httptest.ResponseRecorder, *passHandler) {
	t.Helper()
	next := &passHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/sales/since", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	Require(check)(next).ServeHTTP(rr, req)
	return rr, next
}

func assertUnauthorized(t *testing.T, rr *httptest.ResponseRecorder, next *passHandler) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, next.calls)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "unauthorized"}, body)
}

func TestRequire_CorrectKey_Passes(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"x-api-key": "supersecret"})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, next.calls)
}

func TestRequire_HeaderNameIsCaseInsensitive(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"X-Api-Key": "supersecret"})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, next.calls)
}

func TestRequire_WrongKey_Unauthorized(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"x-api-key": "wrong"})
	assertUnauthorized(t, rr, next)
}

func TestRequire_PrefixOfKey_Unauthorized(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"x-api-key": "super"})
	assertUnauthorized(t, rr, next)
}

func TestRequire_KeyValueIsCaseSensitive(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"x-api-key": "SUPERSECRET"})
	assertUnauthorized(t, rr, next)
}

func TestRequire_MissingHeader_Unauthorized(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), nil)
	assertUnauthorized(t, rr, next)
}

func TestRequire_OtherHeader_Unauthorized(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, "supersecret"), map[string]string{"Authorization": "supersecret"})
	assertUnauthorized(t, rr, next)
}

func TestStaticKey_EmptyKeyRejectsEverything(t *testing.T) {
	rr, next := serve(t, StaticKey(HeaderAPIKey, ""), map[string]string{"x-api-key": ""})
	assertUnauthorized(t, rr, next)
}

func TestRequire_CustomCheck(t *testing.T) {
	// any predicate can replace the static key
	check := func(r *http.Request) bool { return r.URL.Query().Get("token") == "t1" }

	next := &passHandler{}
	rr := httptest.NewRecorder()
	Require(check)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/x?token=t1", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, next.calls)
}
