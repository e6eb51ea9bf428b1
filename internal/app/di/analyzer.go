package di

import (
	"context"
	"log"

	"movie_backend/internal/feature/ai/adapters/gemini"
	"movie_backend/internal/feature/ai/usecase"
)

// NewMovieAnalyzer creates the Gemini-backed analyzer. When the client
// cannot be created (missing ADC credentials etc.) it returns nil and
// the usecase serves its curated fallback instead.
func NewMovieAnalyzer(ctx context.Context) usecase.MovieAnalyzer {
	analyzer, err := gemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Println("[WARN] Gemini unavailable. Serving curated recommendations:", err)
		return nil
	}
	return analyzer
}
