package handlers

import (
	"net/http"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
)

type HealthHandler struct {
	client *aiclient.Client
}

func NewHealthHandler(client *aiclient.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports whether the provider credential was present at startup.
// It does not call the provider.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"openai": "ok"}
	status := http.StatusOK
	if h.client == nil {
		checks["openai"] = "unconfigured: " + aiclient.ErrMissingCredential.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]interface{}{"status": statusStr(status), "checks": checks})
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}
