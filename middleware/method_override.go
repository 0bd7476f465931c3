package middleware

import (
	"net/http"
)

// MethodOverride lets browser form submissions tunnel PUT and DELETE
// over POST, via either the X-HTTP-Method-Override header or a _method
// form field. It wraps the router rather than running as a gin handler
// because the verb has to change before routing happens.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.Header.Get("X-HTTP-Method-Override")
			if override == "" {
				override = r.PostFormValue("_method")
			}
			switch override {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
