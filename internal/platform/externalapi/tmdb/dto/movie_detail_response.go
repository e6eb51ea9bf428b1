// Package dto defines the wire shapes of TMDB responses that need restructuring
// before they become domain entities.
package dto

// MovieDetailResponse is the TMDB /movie/{id} response with
// append_to_response=credits,videos.
type MovieDetailResponse struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	Runtime          int     `json:"runtime"`
	Tagline          string  `json:"tagline"`
	Status           string  `json:"status"`
	Genres           []Genre `json:"genres"`
	Credits          struct {
		Cast []CastMember `json:"cast"`
	} `json:"credits"`
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

// Genre is a TMDB genre object.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one entry of the appended credits.cast list.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Video is one entry of the appended videos.results list.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// GenreListResponse is the TMDB /genre/movie/list response.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// TVShowDetailResponse is the TMDB /tv/{id} response.
type TVShowDetailResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	Genres           []Genre `json:"genres"`
}

// StatusResponse carries TMDB's error envelope for non-2xx responses.
type StatusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
