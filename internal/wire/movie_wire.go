package wire

import (
	"movie-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
	r.Post("/api/movies", movieHandler.CreateMovie)
	r.Put("/api/movies/{id}", movieHandler.UpdateMovie)
	r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
}
