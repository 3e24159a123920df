package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// subjectFromURL resolves the {userID} URL param. "me" stands for the caller.
// Employees may only read their own data; managers may read anyone's.
// It writes the error response and returns false when access is denied.
func subjectFromURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := middleware.UserID(r.Context())

	userID := chi.URLParam(r, "userID")
	if userID == "" || userID == "me" {
		userID = caller
	}

	if userID != caller && !middleware.IsManager(r.Context()) {
		response.Forbidden(w, "Cannot access another user's attendance")
		return "", false
	}
	return userID, true
}
