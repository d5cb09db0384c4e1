package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the document storage the resume handlers depend on.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, payload types.SectionPayload) (*db.Resume, error)
	GetResume(ctx context.Context, userID, id uuid.UUID) (*db.Resume, error)
	UpdateSection(ctx context.Context, userID, id uuid.UUID, payload types.SectionPayload) (*types.SectionPayload, error)
	DeleteResume(ctx context.Context, userID, id uuid.UUID) error
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.ResumeSummary, error)
}

// PDFRenderer turns rendered HTML into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

type createResumeResponse struct {
	ID        uuid.UUID            `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Canonical types.SectionPayload `json:"canonical"`
}

type fieldErrorResponse struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleCreateResume creates a document from its first saved section.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload types.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !payload.Section.Valid() {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown section: %s", payload.Section))
		return
	}
	if serr := checkPayload(&payload); serr != nil {
		validationFailedResponse(w, serr)
		return
	}

	resume, err := s.resumes.CreateResume(r.Context(), userID, payload)
	if err != nil {
		log.Printf("[api] create resume failed: %v", err)
		errorResponse(w, HTTPStatus(err), "failed to create resume")
		return
	}

	jsonResponse(w, http.StatusCreated, createResumeResponse{
		ID:        resume.ID,
		CreatedAt: resume.CreatedAt,
		Canonical: types.PayloadFrom(resume.Document, payload.Section),
	})
}

// handleGetResume returns one full document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, resume.Document)
}

// handleUpdateSection overwrites one section and returns its canonical
// form.
func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	section := types.SectionType(r.PathValue("section"))
	if !section.Valid() {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown section: %s", section))
		return
	}

	var payload types.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The path segment is authoritative over the body's section field.
	payload.Section = section
	if serr := checkPayload(&payload); serr != nil {
		validationFailedResponse(w, serr)
		return
	}

	canonical, err := s.resumes.UpdateSection(r.Context(), userID, id, payload)
	if err != nil {
		if HTTPStatus(err) == http.StatusInternalServerError {
			log.Printf("[api] update section %s of %s failed: %v", section, id, err)
		}
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, canonical)
}

// handleDeleteResume removes a document permanently.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	if err := s.resumes.DeleteResume(r.Context(), userID, id); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListResumes returns the caller's dashboard rows.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := s.resumes.ListResumes(r.Context(), userID)
	if err != nil {
		log.Printf("[api] list resumes failed: %v", err)
		errorResponse(w, HTTPStatus(err), "failed to list resumes")
		return
	}
	jsonResponse(w, http.StatusOK, map[string][]db.ResumeSummary{"resumes": summaries})
}

// handleExportPDF renders one document to PDF.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	view, err := assembly.Export(resume.Document)
	if err != nil {
		errorResponse(w, http.StatusConflict, err.Error())
		return
	}
	html, err := assembly.RenderHTML(view)
	if err != nil {
		log.Printf("[api] render html for %s failed: %v", resume.ID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to render resume")
		return
	}

	pdf, err := s.renderer.RenderPDF(r.Context(), html)
	if err != nil {
		log.Printf("[api] render pdf for %s failed: %v", resume.ID, err)
		errorResponse(w, http.StatusInternalServerError, "failed to render resume")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Title+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[api] write pdf for %s failed: %v", resume.ID, err)
	}
}

// loadResume resolves the authenticated user and the document named in
// the path, writing the error response itself on failure.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return nil, false
	}

	resume, err := s.resumes.GetResume(r.Context(), userID, id)
	if err != nil {
		if HTTPStatus(err) == http.StatusInternalServerError {
			log.Printf("[api] get resume %s failed: %v", id, err)
		}
		errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return resume, true
}

// checkPayload applies the per-section field rules to filled instances
// of the incoming payload.
func checkPayload(payload *types.SectionPayload) *sections.SectionError {
	doc := &types.Document{}
	payload.ApplyTo(doc)
	return sections.CheckSection(doc, payload.Section)
}

// validationFailedResponse reports field failures as a structured list.
func validationFailedResponse(w http.ResponseWriter, serr *sections.SectionError) {
	fields := make([]fieldErrorResponse, 0, len(serr.Fields))
	for _, f := range serr.Fields {
		fields = append(fields, fieldErrorResponse{Index: f.Index, Field: f.Field, Message: f.Message})
	}
	jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  fmt.Sprintf("validation failed for section %s", serr.Section),
		"fields": fields,
	})
}
