// Package auth gates HTTP routes behind a request predicate.
//
// Check is the strategy: StaticKey compares one header against a single
// shared secret. Require turns any Check into chi-compatible middleware that
// answers 401 {"error":"unauthorized"} and stops the chain when the check
// fails. Missing and wrong keys get the same response.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/RaikyD/vila-sales-api/internal/presentation/helpers"
)

const HeaderAPIKey = "x-api-key"

// Check reports whether the request may proceed.
type Check func(r *http.Request) bool

// StaticKey accepts requests whose header value equals key exactly.
// An empty key accepts nothing.
func StaticKey(header, key string) Check {
	want := []byte(key)
	return func(r *http.Request) bool {
		if len(want) == 0 {
			return false
		}
		got := r.Header.Get(header)
		return subtle.ConstantTimeCompare([]byte(got), want) == 1
	}
}

func Require(check Check) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !check(r) {
				helpers.HttpError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
