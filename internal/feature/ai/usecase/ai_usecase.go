// Package usecase はaiフィーチャー（レコメンド・スマート検索・レビュー分析）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"movie_backend/internal/feature/ai/domain/entity"
)

// RecommendationPromptTemplate はレコメンド生成のプロンプトテンプレートです。
// モデルにはJSON配列のみを返すよう指示します。
const RecommendationPromptTemplate = `You are a movie recommendation engine.
Mood: %s
Preferred genres: %s
Recently watched: %s
Respond with ONLY a JSON array of up to 5 objects, each with keys
"title", "reason", "genre", "year" (integer), "confidence" (0-1 float).`

// MovieAnalyzer はレコメンド文面を生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MovieAnalyzer interface {
	// Analyze はプロンプトから生成結果テキストを返します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// aiUsecase はAI支援機能のビジネスロジックを提供します。
// analyzerはnil可で、その場合はキュレーション済みのフォールバックを返します。
type aiUsecase struct {
	analyzer MovieAnalyzer
}

// NewAIUsecase はaiUsecaseの新しいインスタンスを生成します。
func NewAIUsecase(analyzer MovieAnalyzer) *aiUsecase {
	return &aiUsecase{analyzer: analyzer}
}

// fallbackRecommendations はアナライザー未設定時に返すキュレーション済みリストです。
func fallbackRecommendations() []entity.Recommendation {
	return []entity.Recommendation{
		{
			Title:      "Inception",
			Reason:     "Based on your love for complex narratives and sci-fi themes",
			Genre:      "Sci-Fi",
			Year:       2010,
			Confidence: 0.95,
		},
		{
			Title:      "The Matrix",
			Reason:     "Perfect blend of action and philosophical depth",
			Genre:      "Action/Sci-Fi",
			Year:       1999,
			Confidence: 0.92,
		},
	}
}

// Recommend はユーザーの気分・ジャンル・視聴履歴からおすすめ映画を生成します。
// アナライザー未設定時はフォールバックリスト、アナライザー呼び出しの失敗は
// ErrAnalyzerFailedをラップして返します。モデル出力がJSONとして解釈できない
// 場合もフォールバックに切り替えます。
func (u *aiUsecase) Recommend(ctx context.Context, mood string, genres, recentWatches []string) ([]entity.Recommendation, error) {
	if u.analyzer == nil {
		return fallbackRecommendations(), nil
	}

	prompt := fmt.Sprintf(RecommendationPromptTemplate,
		orNone(mood), orNone(strings.Join(genres, ", ")), orNone(strings.Join(recentWatches, ", ")))
	text, err := u.analyzer.Analyze(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalyzerFailed, err)
	}

	recs := make([]entity.Recommendation, 0)
	if err := json.Unmarshal([]byte(extractJSONArray(text)), &recs); err != nil || len(recs) == 0 {
		return fallbackRecommendations(), nil
	}
	return recs, nil
}

// orNone は空文字列をプロンプト用の"none"に置き換えます。
func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

// extractJSONArray はモデル出力からJSON配列部分を切り出します。
// コードフェンスや前置きテキストが付くことがあるためです。
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}

// genreKeywords は検索クエリ中のキーワードとジャンルの対応表です。
var genreKeywords = []struct {
	keywords []string
	genre    string
}{
	{[]string{"comedy", "funny"}, "Comedy"},
	{[]string{"action"}, "Action"},
	{[]string{"horror", "scary"}, "Horror"},
	{[]string{"drama"}, "Drama"},
	{[]string{"sci-fi", "science fiction"}, "Sci-Fi"},
	{[]string{"romance", "romantic"}, "Romance"},
}

// yearKeywords は検索クエリ中のキーワードと年代範囲の対応表です。
var yearKeywords = []struct {
	keywords []string
	years    string
}{
	{[]string{"80s", "1980s"}, "1980-1989"},
	{[]string{"90s", "1990s"}, "1990-1999"},
	{[]string{"2000s"}, "2000-2009"},
}

// moodKeywords は検索クエリ中のキーワードとムードの対応表です。
var moodKeywords = []struct {
	keywords []string
	mood     string
}{
	{[]string{"feel good", "feel-good", "uplifting"}, "uplifting"},
	{[]string{"dark", "gritty"}, "dark"},
	{[]string{"relaxing", "cozy"}, "relaxing"},
}

// SmartSearch は自然言語クエリからジャンル・年代・ムードを抽出します。
// 決定的なキーワードヒューリスティックのみで動作し、外部サービスは呼びません。
func (u *aiUsecase) SmartSearch(ctx context.Context, query string) (*entity.SearchParams, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	lower := strings.ToLower(query)
	params := &entity.SearchParams{
		Keywords:        query,
		ExtractedGenres: []string{},
		ExtractedActors: []string{},
	}

	for _, g := range genreKeywords {
		if containsAny(lower, g.keywords) {
			params.ExtractedGenres = append(params.ExtractedGenres, g.genre)
		}
	}
	for _, y := range yearKeywords {
		if containsAny(lower, y.keywords) {
			params.ExtractedYear = y.years
			break
		}
	}
	for _, m := range moodKeywords {
		if containsAny(lower, m.keywords) {
			params.Mood = m.mood
			break
		}
	}

	return params, nil
}

// containsAny はsがkeywordsのいずれかを含むかを返します。
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// positiveWords / negativeWords はレビュー感情判定のキーワードです。
var (
	positiveWords = []string{"great", "amazing", "excellent", "wonderful", "loved"}
	negativeWords = []string{"bad", "terrible", "awful", "boring", "hated"}
)

// AnalyzeReview はレビュー本文の感情をキーワードヒューリスティックで判定します。
// ポジティブ・ネガティブ両方のキーワードを含む場合はポジティブを優先します。
func (u *aiUsecase) AnalyzeReview(ctx context.Context, reviewText string) (*entity.ReviewAnalysis, error) {
	if strings.TrimSpace(reviewText) == "" {
		return nil, ErrReviewTextRequired
	}

	lower := strings.ToLower(reviewText)
	analysis := &entity.ReviewAnalysis{
		Confidence: 0.85,
		Themes:     []string{"acting", "plot", "visuals"},
	}

	switch {
	case containsAny(lower, positiveWords):
		analysis.Sentiment = "positive"
		analysis.SuggestedRating = 7.5
		analysis.Summary = "Generally positive review highlighting strong performances"
	case containsAny(lower, negativeWords):
		analysis.Sentiment = "negative"
		analysis.SuggestedRating = 3.5
		analysis.Summary = "Critical review pointing out significant weaknesses"
	default:
		analysis.Sentiment = "neutral"
		analysis.SuggestedRating = 6.0
		analysis.Summary = "Mixed review without a strong leaning"
	}

	return analysis, nil
}
