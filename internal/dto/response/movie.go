package response

import (
	"time"

	"movie-reservation/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"`
	Rating      float64   `json:"rating"`
	ReleaseYear int       `json:"release_year"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		ReleaseYear: movie.ReleaseYear,
		CreatedAt:   movie.CreatedAt,
	}
}
