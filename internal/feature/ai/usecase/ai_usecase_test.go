package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// mockMovieAnalyzer is a mock implementation of the MovieAnalyzer interface.
type mockMovieAnalyzer struct {
	AnalyzeFunc  func(ctx context.Context, prompt string) (string, error)
	AnalyzeCalls int
}

func (m *mockMovieAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	m.AnalyzeCalls++
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, prompt)
	}
	return "", errors.New("AnalyzeFunc is not implemented")
}

func TestAIUsecase_Recommend(t *testing.T) {
	ctx := context.Background()

	t.Run("nil analyzer serves the curated fallback", func(t *testing.T) {
		uc := NewAIUsecase(nil)

		recs, err := uc.Recommend(ctx, "thoughtful", nil, nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 || recs[0].Title != "Inception" {
			t.Errorf("unexpected fallback: %+v", recs)
		}
	})

	t.Run("analyzer JSON output is decoded", func(t *testing.T) {
		analyzer := &mockMovieAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n" +
					`[{"title":"Arrival","reason":"Cerebral sci-fi","genre":"Sci-Fi","year":2016,"confidence":0.9}]` +
					"\n```", nil
			},
		}
		uc := NewAIUsecase(analyzer)

		recs, err := uc.Recommend(ctx, "thoughtful", []string{"Sci-Fi"}, []string{"Inception"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 1 || recs[0].Title != "Arrival" || recs[0].Year != 2016 {
			t.Errorf("unexpected recommendations: %+v", recs)
		}
		if analyzer.AnalyzeCalls != 1 {
			t.Errorf("analyzer called %d times", analyzer.AnalyzeCalls)
		}
	})

	t.Run("unparseable analyzer output falls back", func(t *testing.T) {
		analyzer := &mockMovieAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				return "I cannot answer that.", nil
			},
		}
		uc := NewAIUsecase(analyzer)

		recs, err := uc.Recommend(ctx, "", nil, nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 {
			t.Errorf("expected curated fallback, got: %+v", recs)
		}
	})

	t.Run("analyzer failure is wrapped in ErrAnalyzerFailed", func(t *testing.T) {
		analyzer := &mockMovieAnalyzer{
			AnalyzeFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		uc := NewAIUsecase(analyzer)

		_, err := uc.Recommend(ctx, "", nil, nil)

		if !errors.Is(err, ErrAnalyzerFailed) {
			t.Errorf("expected ErrAnalyzerFailed, got: %v", err)
		}
	})
}

func TestAIUsecase_SmartSearch(t *testing.T) {
	ctx := context.Background()
	uc := NewAIUsecase(nil)

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := uc.SmartSearch(ctx, "   ")
		if !errors.Is(err, ErrQueryRequired) {
			t.Errorf("expected ErrQueryRequired, got: %v", err)
		}
	})

	tests := []struct {
		name           string
		query          string
		expectedGenres []string
		expectedYear   string
		expectedMood   string
	}{
		{
			name:           "funny 90s query",
			query:          "Funny movies from the 90s",
			expectedGenres: []string{"Comedy"},
			expectedYear:   "1990-1999",
		},
		{
			name:           "action query",
			query:          "best ACTION flicks",
			expectedGenres: []string{"Action"},
		},
		{
			name:           "multiple genres",
			query:          "a funny action movie",
			expectedGenres: []string{"Comedy", "Action"},
		},
		{
			name:           "mood extraction",
			query:          "something feel good for tonight",
			expectedGenres: []string{},
			expectedMood:   "uplifting",
		},
		{
			name:           "no keywords",
			query:          "movies with dogs",
			expectedGenres: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := uc.SmartSearch(ctx, tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if params.Keywords != tt.query {
				t.Errorf("keywords should echo the query, got: %q", params.Keywords)
			}
			if !reflect.DeepEqual(params.ExtractedGenres, tt.expectedGenres) {
				t.Errorf("expected genres %v, got: %v", tt.expectedGenres, params.ExtractedGenres)
			}
			if params.ExtractedYear != tt.expectedYear {
				t.Errorf("expected year %q, got: %q", tt.expectedYear, params.ExtractedYear)
			}
			if params.Mood != tt.expectedMood {
				t.Errorf("expected mood %q, got: %q", tt.expectedMood, params.Mood)
			}
		})
	}

	t.Run("results are deterministic", func(t *testing.T) {
		first, err := uc.SmartSearch(ctx, "funny action from the 90s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.SmartSearch(ctx, "funny action from the 90s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("same query produced different results: %+v vs %+v", first, second)
		}
	})
}

func TestAIUsecase_AnalyzeReview(t *testing.T) {
	ctx := context.Background()
	uc := NewAIUsecase(nil)

	t.Run("empty review is rejected", func(t *testing.T) {
		_, err := uc.AnalyzeReview(ctx, "  ")
		if !errors.Is(err, ErrReviewTextRequired) {
			t.Errorf("expected ErrReviewTextRequired, got: %v", err)
		}
	})

	tests := []struct {
		name              string
		review            string
		expectedSentiment string
	}{
		{name: "positive keywords", review: "An AMAZING ride from start to finish", expectedSentiment: "positive"},
		{name: "negative keywords", review: "terrible pacing and a bad script", expectedSentiment: "negative"},
		{name: "no keywords", review: "It was a movie. It had scenes.", expectedSentiment: "neutral"},
		{name: "mixed keywords lean positive", review: "great visuals but a bad ending", expectedSentiment: "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := uc.AnalyzeReview(ctx, tt.review)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if analysis.Sentiment != tt.expectedSentiment {
				t.Errorf("expected sentiment %q, got: %q", tt.expectedSentiment, analysis.Sentiment)
			}
			if analysis.Confidence <= 0 || analysis.SuggestedRating <= 0 {
				t.Errorf("confidence and rating should be set: %+v", analysis)
			}
			if len(analysis.Themes) == 0 {
				t.Error("themes should not be empty")
			}
		})
	}
}
