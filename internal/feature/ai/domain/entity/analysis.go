// Package entity defines the AI assistance result models.
package entity

// Recommendation is a single suggested movie with the reasoning behind it.
type Recommendation struct {
	Title      string  `json:"title"`
	Reason     string  `json:"reason"`
	Genre      string  `json:"genre"`
	Year       int     `json:"year"`
	Confidence float64 `json:"confidence"`
}

// SearchParams is the structured interpretation of a natural-language
// search query.
type SearchParams struct {
	Keywords        string   `json:"keywords"`
	ExtractedGenres []string `json:"extractedGenres"`
	ExtractedYear   string   `json:"extractedYear,omitempty"`
	ExtractedActors []string `json:"extractedActors"`
	Mood            string   `json:"mood,omitempty"`
}

// ReviewAnalysis is the sentiment breakdown of a movie review.
type ReviewAnalysis struct {
	Sentiment       string   `json:"sentiment"`
	Confidence      float64  `json:"confidence"`
	Themes          []string `json:"themes"`
	SuggestedRating float64  `json:"suggestedRating"`
	Summary         string   `json:"summary"`
}
