package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/app"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/sports", h.listSports)
	s.mux.Get("/v1/sports/{sport}/canchas", h.listFacilities)
	s.mux.Post("/v1/sports/{sport}/refresh", h.refresh)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listSports(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, map[string]any{"sports": h.Q.Sports()})
}

func (h *Handlers) listFacilities(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	term := r.URL.Query().Get("q")

	out, err := h.Q.Facilities(r.Context(), sport, term)
	if err != nil {
		if errors.Is(err, app.ErrUnknownSport) {
			writeProblem(w, http.StatusNotFound, "Not Found", "unknown sport: "+sport)
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	writeJSONWithETag(w, r, out)
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")

	out, err := h.Q.Refresh(r.Context(), sport)
	if err != nil {
		if errors.Is(err, app.ErrUnknownSport) {
			writeProblem(w, http.StatusNotFound, "Not Found", "unknown sport: "+sport)
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Error().Err(err).Msg("failed to write refresh body")
	}
}
