package presentation

import (
	"net/http"

	"github.com/RaikyD/vila-sales-api/internal/application"
	"github.com/RaikyD/vila-sales-api/internal/domain"
	"github.com/RaikyD/vila-sales-api/internal/logger"
	"github.com/RaikyD/vila-sales-api/internal/presentation/helpers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const ServiceName = "vila-sales-api"

type salesResponse struct {
	Rows []domain.SalesRecord `json:"rows"`
}

// zero matches encode as [] rather than null
func newSalesResponse(rows []domain.SalesRecord) salesResponse {
	if rows == nil {
		rows = []domain.SalesRecord{}
	}
	return salesResponse{Rows: rows}
}

type SalesHandler struct {
	svc *application.SalesService
}

func NewSalesHandler(svc *application.SalesService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Register mounts the query routes; the caller decides the prefix and auth.
func (h *SalesHandler) Register(r chi.Router) {
	r.Get("/sales/since", h.Since)
	r.Get("/sales/range", h.Range)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": ServiceName,
	})
}

func (h *SalesHandler) Since(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if missing := requireParams(q.Get, "since"); len(missing) > 0 {
		helpers.HttpError(w, http.StatusBadRequest, missingMsg(missing))
		return
	}

	since, err := parseTimestamp(q.Get("since"))
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "since: "+err.Error())
		return
	}

	query := domain.SinceQuery{
		Since: since,
		Limit: domain.SinceLimit.Resolve(q.Get("limit")),
	}
	reqID := middleware.GetReqID(r.Context())
	rows, err := h.svc.Since(r.Context(), query, reqID)
	if err != nil {
		logger.Error("sales since failed", "request_id", reqID, "since", since, "limit", query.Limit, "err", err)
		helpers.HttpError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, newSalesResponse(rows))
}

func (h *SalesHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if missing := requireParams(q.Get, "from", "to"); len(missing) > 0 {
		helpers.HttpError(w, http.StatusBadRequest, missingMsg(missing))
		return
	}

	from, err := parseTimestamp(q.Get("from"))
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := parseTimestamp(q.Get("to"))
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}
	if from.After(to) {
		helpers.HttpError(w, http.StatusBadRequest, "from must not be after to")
		return
	}

	query := domain.RangeQuery{
		From:  from,
		To:    to,
		Limit: domain.RangeLimit.Resolve(q.Get("limit")),
	}
	reqID := middleware.GetReqID(r.Context())
	rows, err := h.svc.Range(r.Context(), query, reqID)
	if err != nil {
		logger.Error("sales range failed", "request_id", reqID, "from", from, "to", to, "limit", query.Limit, "err", err)
		helpers.HttpError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, newSalesResponse(rows))
}
