package www

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"node.town/julianday/db"
	"node.town/julianday/jd"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Recorder receives every successful conversion.
type Recorder interface {
	Record(ctx context.Context, e db.Entry) (db.Entry, error)
}

type Conversion struct {
	JulianDay float64 `json:"julian_day"`
	DateTime  string  `json:"datetime"`
}

type convertRequest struct {
	JulianDay any     `json:"julian_day"`
	DateTime  *string `json:"datetime"`
}

// Options configures the API. Journal may be nil.
type Options struct {
	Journal Recorder
	Logger  *log.Logger
	// Precision is the number of decimals of Julian days written to the
	// journal.
	Precision int
}

type Handler struct {
	journal   Recorder
	logger    *log.Logger
	precision int
}

func NewRouter(opts Options) *chi.Mux {
	logger := opts.Logger
	h := &Handler{journal: opts.Journal, logger: logger, precision: opts.Precision}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.StandardLog(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/jd/{value}", h.handleJulianDay)
	r.Get("/datetime/{value}", h.handleDateTime)
	r.Post("/convert", h.handleConvert)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string][]string{"routes": routesList(r)})
	})

	return r
}

func Serve(port int, opts Options) error {
	r := NewRouter(opts)

	opts.Logger.Info("http", "url", fmt.Sprintf("http://localhost:%d", port))
	return http.ListenAndServe(fmt.Sprintf(":%d", port), r)
}

func routesList(r chi.Routes) []string {
	var routes []string
	chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	return routes
}

func (h *Handler) handleJulianDay(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	julianDay, err := jd.ParseJulianDay(value)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.toDateTime(w, r, value, julianDay)
}

func (h *Handler) handleDateTime(w http.ResponseWriter, r *http.Request) {
	h.fromDateTime(w, r, chi.URLParam(r, "value"))
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("malformed request body: %s", err),
		})
		return
	}

	switch {
	case req.JulianDay != nil && req.DateTime == nil:
		julianDay, err := jd.Coerce(req.JulianDay)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.toDateTime(w, r, cast.ToString(req.JulianDay), julianDay)
	case req.JulianDay == nil && req.DateTime != nil:
		h.fromDateTime(w, r, *req.DateTime)
	default:
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "exactly one of julian_day or datetime is required",
		})
	}
}

func (h *Handler) toDateTime(w http.ResponseWriter, r *http.Request, input string, julianDay float64) {
	dt, err := jd.ToDateTime(julianDay)
	if err != nil {
		h.writeError(w, err)
		return
	}

	c := Conversion{JulianDay: julianDay, DateTime: dt.String()}
	h.record(r.Context(), db.ToDateTime, input, c.DateTime)
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) fromDateTime(w http.ResponseWriter, r *http.Request, input string) {
	dt, err := jd.ParseDateTime(input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	julianDay, err := jd.FromDateTime(dt)
	if err != nil {
		h.writeError(w, err)
		return
	}

	c := Conversion{JulianDay: julianDay, DateTime: dt.String()}
	h.record(r.Context(), db.FromDateTime, input, strconv.FormatFloat(julianDay, 'f', h.precision, 64))
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) record(ctx context.Context, direction db.Direction, input, output string) {
	if h.journal == nil {
		return
	}

	_, err := h.journal.Record(ctx, db.Entry{
		Direction: direction,
		Input:     strings.TrimSpace(input),
		Output:    output,
	})
	if err != nil {
		h.logger.Error("journal", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, jd.ErrInvalidArgument) {
		status = http.StatusBadRequest
	} else {
		h.logger.Error("conversion failed", "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
