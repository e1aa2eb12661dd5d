package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

const (
	msgWelcome            = "Welcome to the Movie Recommendation API"
	msgPreferenceRequired = "Preference is required"
	msgInvalidBody        = "Invalid request body"
	msgInternal           = "Internal server error"
	msgProbeHelp          = "Check your API key at https://platform.openai.com/api-keys"
)

// Resolver is the recommendation use case the boundary calls.
type Resolver interface {
	Resolve(ctx context.Context, req domain.PreferenceRequest) (domain.RecommendationResult, error)
}

// Handler serves the JSON API.
type Handler struct {
	resolver Resolver
	prober   ports.UpstreamProber
	logger   ports.Logger
}

// NewHandler wires the handler.
func NewHandler(resolver Resolver, prober ports.UpstreamProber, logger ports.Logger) *Handler {
	return &Handler{resolver: resolver, prober: prober, logger: logger}
}

// Root is the liveness message.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, messageResponse{Message: msgWelcome})
}

// Recommend validates the preference, resolves it and replies with the
// comma-joined list and its source.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := getValidator().Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgPreferenceRequired)
		return
	}

	preference, err := domain.NewPreferenceRequest(req.Preference)
	if err != nil {
		respondError(w, http.StatusBadRequest, msgPreferenceRequired)
		return
	}

	result, err := h.resolver.Resolve(r.Context(), preference)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPreference) {
			respondError(w, http.StatusBadRequest, msgPreferenceRequired)
			return
		}
		h.logger.Error("recommendation failed", err, map[string]interface{}{"path": r.URL.Path})
		respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	respondJSON(w, http.StatusOK, RecommendResponse{
		Movies: result.Raw(),
		Source: result.Source.WireName(),
	})
}

// TestOpenAI runs the upstream probe and reports the outcome in detail.
func (h *Handler) TestOpenAI(w http.ResponseWriter, r *http.Request) {
	res := h.prober.Probe(r.Context())
	h.logger.Info("upstream probe finished", map[string]interface{}{
		"outcome":     string(res.Outcome),
		"status_code": res.StatusCode,
	})
	status, body := probeResponse(res)
	respondJSON(w, status, body)
}

func probeResponse(res domain.ProbeResult) (int, map[string]interface{}) {
	switch res.Outcome {
	case domain.ProbeSucceeded:
		return http.StatusOK, map[string]interface{}{
			"status":      "SUCCESS",
			"message":     res.Message,
			"result":      res.Result,
			"apiKeyValid": true,
		}
	case domain.ProbeAPIError:
		return http.StatusBadRequest, map[string]interface{}{
			"status":  "ERROR",
			"message": res.Message,
			"details": res.Details,
		}
	case domain.ProbeEmpty:
		return http.StatusBadRequest, map[string]interface{}{
			"status":   "ERROR",
			"message":  res.Message,
			"response": res.Response,
		}
	default:
		body := map[string]interface{}{
			"status":    "ERROR",
			"message":   res.Message,
			"errorData": nil,
			"helpText":  msgProbeHelp,
		}
		if res.StatusCode != 0 {
			body["statusCode"] = res.StatusCode
		}
		if res.ErrorData != "" {
			body["errorData"] = res.ErrorData
		}
		return http.StatusInternalServerError, body
	}
}
