// Package router validates geometry requests and maps import errors to
// HTTP statuses.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	mylog "github.com/spatialkit/planar/internal/logger"

	"github.com/spatialkit/planar/internal/core/importer"
	"github.com/spatialkit/planar/internal/core/model"
	"github.com/spatialkit/planar/internal/core/observability"
	"github.com/spatialkit/planar/pkg/geometry"
)

// Importer is satisfied by the core service.
type Importer interface {
	Import(ctx context.Context, req model.ImportRequest) (model.Summary, bool, error)
}

type importResponse struct {
	Summary model.Summary `json:"summary"`
	Cached  bool          `json:"cached"`
}

// HandleImport serves POST /v1/import: the body is the document, the
// "f" query parameter selects the format (wkt by default).
func HandleImport(logger *slog.Logger, maxBody int64, svc Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		format, err := parseFormat(r.URL.Query().Get("f"))
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, "/v1/import", sw.code, time.Since(start).Seconds())
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
		if err != nil {
			http.Error(sw, "read body: "+err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, "/v1/import", sw.code, time.Since(start).Seconds())
			return
		}
		if int64(len(body)) > maxBody {
			http.Error(sw, "document too large", http.StatusRequestEntityTooLarge)
			observability.ObserveHTTP(r.Method, "/v1/import", sw.code, time.Since(start).Seconds())
			return
		}

		ctx := mylog.WithFormat(r.Context(), format)
		serveImport(ctx, logger, sw, svc, model.ImportRequest{Format: format, Data: body})
		observability.ObserveHTTP(r.Method, "/v1/import", sw.code, time.Since(start).Seconds())
	}
}

// HandleMeasure serves GET /v1/measure?wkt=... (or ?esrijson=...) for
// small documents that fit a query string.
func HandleMeasure(logger *slog.Logger, svc Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		req, err := measureRequest(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, "/v1/measure", sw.code, time.Since(start).Seconds())
			return
		}

		ctx := mylog.WithFormat(r.Context(), req.Format)
		serveImport(ctx, logger, sw, svc, req)
		observability.ObserveHTTP(r.Method, "/v1/measure", sw.code, time.Since(start).Seconds())
	}
}

func measureRequest(r *http.Request) (model.ImportRequest, error) {
	q := r.URL.Query()
	wktDoc := strings.TrimSpace(q.Get("wkt"))
	esriDoc := strings.TrimSpace(q.Get("esrijson"))
	switch {
	case wktDoc != "" && esriDoc != "":
		return model.ImportRequest{}, errors.New("supply either wkt or esrijson, not both")
	case wktDoc != "":
		return model.ImportRequest{Format: model.FormatWKT, Data: []byte(wktDoc)}, nil
	case esriDoc != "":
		return model.ImportRequest{Format: model.FormatEsriJSON, Data: []byte(esriDoc)}, nil
	default:
		return model.ImportRequest{}, errors.New("missing required parameter: wkt or esrijson")
	}
}

func serveImport(ctx context.Context, logger *slog.Logger, sw *statusWriter, svc Importer, req model.ImportRequest) {
	sum, cached, err := svc.Import(ctx, req)
	if err != nil {
		code := statusFor(err)
		logger.LogAttrs(ctx, slog.LevelDebug, "import rejected",
			slog.String("format", req.Format),
			slog.Int("status", code),
			slog.String("err", err.Error()),
		)
		http.Error(sw, err.Error(), code)
		return
	}

	sw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(sw).Encode(importResponse{Summary: sum, Cached: cached})
}

// statusFor keeps the error taxonomy visible at the boundary: blank or
// unusable arguments are 400, documents that fail the grammar are 422.
func statusFor(err error) int {
	var fe *geometry.FormatError
	switch {
	case errors.Is(err, geometry.ErrBlankInput), errors.Is(err, importer.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func parseFormat(f string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", model.FormatWKT:
		return model.FormatWKT, nil
	case model.FormatEsriJSON:
		return model.FormatEsriJSON, nil
	default:
		return "", errors.New("unknown format: " + f)
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
