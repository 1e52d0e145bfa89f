package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"smartcv/internal/db"
	"smartcv/internal/extract"
	"smartcv/internal/jobs"
	"smartcv/internal/pipeline"
	"smartcv/internal/server/middleware"
)

// maxUploadBytes caps the size of an uploaded CV document.
const maxUploadBytes = 16 << 20

// processTimeout bounds a single background extraction.
const processTimeout = 5 * time.Minute

// handleHealth returns server health status, including database reachability
// when one is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.authHandler == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Authentication requires a database")
		return
	}
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.authHandler == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Authentication requires a database")
		return
	}
	s.authHandler.Login(w, r)
}

// handleUploadCV accepts a multipart document upload and starts a
// background extraction job. The response carries the job id to poll.
func (s *Server) handleUploadCV(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "CV extraction requires a Gemini API key")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("cv_file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing cv_file field")
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		s.errorResponse(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("Unsupported file type: %s", filepath.Ext(header.Filename)))
		return
	}

	path, err := s.saveUpload(file, header.Filename)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store upload")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	jobID := s.store.Create()
	go s.processUpload(jobID, path, header.Filename, s.optionalUserID(r))

	s.jsonResponse(w, http.StatusAccepted, map[string]string{
		"id":     jobID,
		"status": string(jobs.StateProcessing),
	})
}

// saveUpload copies the uploaded file into a scratch directory, keeping the
// original extension for format dispatch.
func (s *Server) saveUpload(file io.Reader, filename string) (string, error) {
	dir, err := os.MkdirTemp("", "smartcv-upload-*")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "cv"+filepath.Ext(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return path, nil
}

// optionalUserID resolves the bearer token when one is present, so uploads
// from logged-in users are associated with their account. Anonymous uploads
// are still accepted.
func (s *Server) optionalUserID(r *http.Request) *uuid.UUID {
	if s.jwtService == nil {
		return nil
	}
	token := middleware.BearerToken(r)
	if token == "" {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	id := claims.UserID
	return &id
}

// processUpload runs extraction in the background and records the outcome.
func (s *Server) processUpload(jobID, path, sourceFilename string, userID *uuid.UUID) {
	defer os.RemoveAll(filepath.Dir(path))

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	rec, err := s.parse(ctx, pipeline.ParseOptions{
		Path:      path,
		Client:    s.llmClient,
		PhotoPath: s.cfg.PhotoPath,
		Log:       s.log,
	})
	if err != nil {
		s.log.Error().Err(err).Str("job", jobID).Msg("cv extraction failed")
		s.store.Fail(jobID, err.Error())
		return
	}

	if s.db != nil {
		if _, err := s.db.SaveParsedCV(ctx, userID, sourceFilename, rec); err != nil {
			s.log.Warn().Err(err).Msg("failed to persist parsed cv")
		}
	}

	s.store.Complete(jobID, rec)
	s.log.Info().Str("job", jobID).Msg("cv extraction completed")
}

// handleHistory lists the authenticated user's stored extractions.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "History requires a database")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cvs, err := s.db.ListParsedCVs(r.Context(), userID, 50)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list parsed cvs")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list history")
		return
	}
	if cvs == nil {
		cvs = []db.ParsedCV{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"items": cvs})
}

// handleRenders lists recent render history.
func (s *Server) handleRenders(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Render history requires a database")
		return
	}

	renders, err := s.db.ListRenders(r.Context(), 50)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list renders")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list render history")
		return
	}
	if renders == nil {
		renders = []db.Render{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"items": renders})
}

// handlePollCV reports job progress. A terminal result is returned once,
// then the job is gone.
func (s *Server) handlePollCV(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, ok := s.store.Take(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	switch job.State {
	case jobs.StateDone:
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"status": string(job.State),
			"record": job.Record,
		})
	case jobs.StateError:
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"status": string(job.State),
			"error":  job.Err,
		})
	default:
		// Still processing: signal the caller to keep polling.
		s.jsonResponse(w, http.StatusAccepted, map[string]any{
			"status": string(job.State),
		})
	}
}

// handleRender converts a JSON CV record into the anonymized DOCX download.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	artifact, err := s.render(r.Context(), pipeline.RenderOptions{
		Payload:   payload,
		Contact:   s.contact(),
		Client:    s.llmClient,
		PhotoPath: s.cfg.PhotoPath,
		Log:       s.log,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("render failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.db != nil {
		if _, err := s.db.SaveRender(r.Context(), nil, artifact.Filename, len(artifact.Data)); err != nil {
			s.log.Warn().Err(err).Msg("failed to persist render record")
		}
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	if _, err := w.Write(artifact.Data); err != nil {
		s.log.Error().Err(err).Msg("failed to write artifact")
	}
}
