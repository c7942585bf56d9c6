package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pfalcao/go-biblioteca/internal/utils"
)

const csrfFormField = "csrf_token"

// issueCSRFToken builds a "nonce:signature" token where the signature is an
// HMAC-SHA256 over the nonce and the session's user ID. Binding the token to
// the user means a token stolen from one session is useless in another.
func (h *Handler) issueCSRFToken(userID int64) string {
	nonce := uuid.NewString()
	signature := utils.HashString(nonce+"|"+strconv.FormatInt(userID, 10), h.hashKey)
	return nonce + ":" + signature
}

// verifyCSRFToken checks the token extracted from a submitted form against
// the session's user ID.
func (h *Handler) verifyCSRFToken(userID int64, token string) bool {
	nonce, signature, found := strings.Cut(token, ":")
	if !found || nonce == "" {
		return false
	}
	return utils.VerifyHMAC(nonce+"|"+strconv.FormatInt(userID, 10), signature, h.hashKey)
}

// checkCSRF validates the CSRF field of a parsed form. On failure it writes
// a 403 page and reports false; the caller must return immediately.
func (h *Handler) checkCSRF(w http.ResponseWriter, r *http.Request) bool {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return false
	}

	if !h.verifyCSRFToken(userID, r.PostFormValue(csrfFormField)) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return false
	}

	return true
}

// csrfForPage issues a token for the authenticated user rendering a page.
// Pages reached without a session get an empty token; their forms will fail
// CSRF on submit, which is the correct outcome.
func (h *Handler) csrfForPage(r *http.Request) string {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return ""
	}
	return h.issueCSRFToken(userID)
}
