package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/atteraisanen/MovieGuessr/internal/model"
	"github.com/atteraisanen/MovieGuessr/internal/service"
)

// MovieHandler handles the movie endpoints
type MovieHandler struct {
	movieSvc *service.MovieService

	// Now is the clock used to pick the movie of the day. Tests override it.
	Now func() time.Time
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(movieSvc *service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieSvc: movieSvc,
		Now:      time.Now,
	}
}

// Daily handles GET /movie/
func (h *MovieHandler) Daily(w http.ResponseWriter, r *http.Request) {
	movie, daysPassed, err := h.movieSvc.DailyMovie(r.Context(), h.Now())
	if errors.Is(err, service.ErrMovieNotFound) {
		writeError(w, http.StatusNotFound, "Movie not found")
		return
	}
	if err != nil {
		log.Printf("daily movie lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch movie")
		return
	}

	writeJSON(w, http.StatusOK, model.DailyMovie{Movie: movie, DaysPassed: daysPassed})
}

// Search handles GET /movies/{title}
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	movies, err := h.movieSvc.Search(r.Context(), title)
	if err != nil {
		log.Printf("title search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to search movies")
		return
	}
	if movies == nil {
		movies = []*model.Movie{}
	}

	writeJSON(w, http.StatusOK, movies)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
