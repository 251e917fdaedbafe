package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/report-explorer/internal/artifacts"
	"github.com/jonathan/report-explorer/internal/catalog"
	"github.com/jonathan/report-explorer/internal/render"
	"github.com/jonathan/report-explorer/internal/types"
)

// CatalogResponse represents the response for GET /reports.
type CatalogResponse struct {
	Count   int                `json:"count"`
	Reports []types.CatalogRow `json:"reports"`
	Message string             `json:"message,omitempty"`
}

// ReportResponse represents the response for GET /reports/{id}.
type ReportResponse struct {
	Row    types.CatalogRow `json:"row"`
	Report map[string]any   `json:"report,omitempty"`
}

// MaterializeResponse represents the response for POST /reports/{id}/materialize.
type MaterializeResponse struct {
	ReportID string `json:"report_id"`
	File     string `json:"file"`
	Status   string `json:"status"`
}

// noDataMessage marks the terminal empty-catalog state. It is a display
// state for the caller, not an error.
const noDataMessage = "no analysed reports available"

// handleListReports returns the filtered report catalog.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListAnalysedReports(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	rows := catalog.Project(docs)
	if len(rows) == 0 {
		s.jsonResponse(w, http.StatusOK, CatalogResponse{
			Count:   0,
			Reports: []types.CatalogRow{},
			Message: noDataMessage,
		})
		return
	}

	filtered := catalog.Filter(rows, criteriaFromQuery(r))
	s.jsonResponse(w, http.StatusOK, CatalogResponse{
		Count:   len(filtered),
		Reports: filtered,
	})
}

// handleReportFacets returns the distinct filter options.
func (s *Server) handleReportFacets(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListAnalysedReports(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, catalog.CollectFacets(docs))
}

// handleGetReport returns one report's catalog row plus structured content.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupReport(w, r)
	if !ok {
		return
	}

	rows := catalog.Project([]types.ReportDocument{*doc})
	s.jsonResponse(w, http.StatusOK, ReportResponse{
		Row:    rows[0],
		Report: doc.Report,
	})
}

// handleRenderReport renders the structured report content to HTML on demand.
func (s *Server) handleRenderReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupReport(w, r)
	if !ok {
		return
	}

	html := render.RenderReport(doc.Report)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleReportFile serves the on-disk report artifact inline.
func (s *Server) handleReportFile(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, false)
}

// handleDownloadReport serves the on-disk report artifact as an attachment.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, true)
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, download bool) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Report ID is required")
		return
	}

	data, err := s.artifacts.Read(id)
	if err != nil {
		if errors.Is(err, artifacts.ErrArtifactMissing) {
			// Informational: the artifact is simply not there yet.
			s.errorResponse(w, http.StatusNotFound, "HTML report file not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if download {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", artifacts.FileName(id)))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleMaterializeReport renders a report and persists its artifact.
func (s *Server) handleMaterializeReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupReport(w, r)
	if !ok {
		return
	}

	err := s.artifacts.Materialize(doc.ID, func() (string, error) {
		return render.RenderReport(doc.Report), nil
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to materialize report: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MaterializeResponse{
		ReportID: doc.ID,
		File:     artifacts.FileName(doc.ID),
		Status:   "materialized",
	})
}

// lookupReport resolves the {id} path value to a report document, writing
// the error response itself when the lookup fails.
func (s *Server) lookupReport(w http.ResponseWriter, r *http.Request) (*types.ReportDocument, bool) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Report ID is required")
		return nil, false
	}

	doc, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if doc == nil {
		err := &ErrReportNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return doc, true
}

// criteriaFromQuery builds filter criteria from repeatable query
// parameters. Missing parameters leave their dimension unconstrained.
func criteriaFromQuery(r *http.Request) types.FilterCriteria {
	q := r.URL.Query()
	return types.FilterCriteria{
		Companies:  q["company"],
		Categories: q["category"],
		Sources:    q["source"],
		DateFrom:   q.Get("from"),
		DateTo:     q.Get("to"),
	}
}
