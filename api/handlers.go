package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/purchase"
)

const maxBodyBytes = 1 << 20

type PointsClaimer interface {
	ClaimPoints(ctx context.Context, userID string) (models.ClaimPointsResult, error)
}

type HealthReporter interface {
	Healthy() bool
	ServiceHealths() []models.ServiceHealth
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Healthy        bool                   `json:"healthy"`
	ServiceHealths []models.ServiceHealth `json:"service_healths"`
}

type Handler struct {
	recorder purchase.Recorder
	verifier purchase.Verifier
	claimer  PointsClaimer
	auth     *Authenticator
	health   HealthReporter
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+models.ActionClaimPointsPath, h.authenticated(h.claimPoints))
	mux.HandleFunc("POST "+models.ActionSaveTransactionPath, h.authenticated(h.saveTransaction))
	mux.HandleFunc("POST "+models.ActionCheckTransactionPath, h.authenticated(h.checkTransaction))
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

type scoutHandler func(w http.ResponseWriter, r *http.Request, scoutID string)

func (h *Handler) authenticated(next scoutHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoutID, err := h.auth.ScoutID(r)
		if err != nil {
			log.WithError(err).WithField("path", r.URL.Path).Debug("[API] Unauthenticated request")
			writeError(w, err)
			return
		}
		next(w, r, scoutID)
	}
}

func (h *Handler) claimPoints(w http.ResponseWriter, r *http.Request, scoutID string) {
	result, err := h.claimer.ClaimPoints(r.Context(), scoutID)
	if err != nil {
		log.WithError(err).WithField("scout_id", scoutID).Error("[API] Error claiming points")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) saveTransaction(w http.ResponseWriter, r *http.Request, scoutID string) {
	var input models.SaveTransactionInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, err)
		return
	}
	input.ScoutID = scoutID

	result, err := h.recorder.Save(r.Context(), input)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"scout_id":        scoutID,
			"source_chain_id": input.SourceChainID,
			"token_id":        input.TokenID,
			"quoted_price":    input.QuotedPrice,
		}).Error("[API] Error saving transaction")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) checkTransaction(w http.ResponseWriter, r *http.Request, scoutID string) {
	var input models.CheckTransactionInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, err)
		return
	}

	tx, err := purchase.FindPendingTransaction(input.PendingTransactionID)
	if err != nil {
		writeError(w, err)
		return
	}
	if tx.ScoutID != scoutID {
		writeError(w, common.NewError(common.ErrorKindUnauthorized, "pending transaction belongs to another scout", nil))
		return
	}

	result, err := h.verifier.Check(r.Context(), input)
	if err != nil {
		log.WithError(err).WithField("pending_transaction_id", input.PendingTransactionID).Error("[API] Error checking transaction")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		writeJSON(w, http.StatusOK, healthResponse{Healthy: true})
		return
	}

	status := http.StatusOK
	healthy := h.health.Healthy()
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Healthy: healthy, ServiceHealths: h.health.ServiceHealths()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return common.NewError(common.ErrorKindValidation, "invalid request body", err)
	}
	return nil
}

func statusFor(err error) int {
	switch common.KindOf(err) {
	case common.ErrorKindValidation:
		return http.StatusBadRequest
	case common.ErrorKindNotFound:
		return http.StatusNotFound
	case common.ErrorKindUnauthenticated:
		return http.StatusUnauthorized
	case common.ErrorKindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := common.UserMessage(err)
	if status == http.StatusInternalServerError {
		message = common.GenericErrorMessage
	}
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		log.WithError(err).Warn("[API] Error writing response")
	}
}

func NewHandler(recorder purchase.Recorder, verifier purchase.Verifier, claimer PointsClaimer, auth *Authenticator, health HealthReporter) *Handler {
	return &Handler{
		recorder: recorder,
		verifier: verifier,
		claimer:  claimer,
		auth:     auth,
		health:   health,
	}
}
