// Package entity defines the domain entities for the catalog feature.
//
// The catalog is an external, read-only resource; entities carry json tags so
// pages can be returned to clients without a second mapping layer.
package entity

// Movie is a single movie as returned by catalog list endpoints.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
}

// MoviePage is one page of movie results.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a catalog genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited cast entry on a movie detail.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Video is a trailer or clip attached to a movie detail.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// MovieDetail is the full movie record including appended credits and videos.
type MovieDetail struct {
	Movie
	Genres  []Genre      `json:"genres"`
	Runtime int          `json:"runtime"`
	Tagline string       `json:"tagline"`
	Status  string       `json:"status"`
	Cast    []CastMember `json:"cast,omitempty"`
	Videos  []Video      `json:"videos,omitempty"`
}
