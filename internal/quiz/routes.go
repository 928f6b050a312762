package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the quiz endpoints on the given router.
func RegisterRoutes(r chi.Router, svc *Service, store *Store) {
	r.Post("/generate_quiz", handleGenerate(svc))
	r.Get("/history", handleHistory(store))
	r.Get("/quiz/{id}", handleGetQuiz(store))
}

type generateRequest struct {
	URL string `json:"url"`
}

func handleGenerate(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.GenerateFromURL(r.Context(), req.URL)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyURL), errors.Is(err, ErrNotWikipedia), errors.Is(err, ErrScrape):
				writeDetail(w, http.StatusBadRequest, err.Error())
			default:
				writeDetail(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func handleHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.History(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func handleGetQuiz(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeDetail(w, http.StatusNotFound, "Quiz not found")
			return
		}

		result, err := store.GetByID(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			writeDetail(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error response in the {"detail": ...} envelope
// the frontend expects.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
