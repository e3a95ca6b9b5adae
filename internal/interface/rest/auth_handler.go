package rest

import (
	"crypto/subtle"
	"net/http"

	"shavtzak-service/pkg/logger"

	"github.com/go-chi/render"
)

// CheckPassword returns the stateless manager password-check handler:
// POST {password} compared against the configured secret, answering
// {valid}. No session is issued.
func CheckPassword(log logger.Logger, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}

		valid := secret != "" &&
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(secret)) == 1
		if !valid {
			log.Warn("Manager password check failed")
		}
		render.JSON(w, r, map[string]bool{"valid": valid})
	}
}
