// Package usecase はstreamingフィーチャー（配信状況の照会）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"net/url"
	"strings"

	"movie_backend/internal/feature/streaming/domain/entity"
)

// streamingUsecase は配信プロバイダーの照会ロジックを提供します。
// 実際の配信APIとは連携せず、映画IDをシードとする疑似乱数で
// 安定した応答を合成します。同じIDには常に同じ結果を返します。
type streamingUsecase struct{}

// NewStreamingUsecase はstreamingUsecaseの新しいインスタンスを生成します。
func NewStreamingUsecase() *streamingUsecase {
	return &streamingUsecase{}
}

// Availability は映画IDに対する各プロバイダーの配信状況を返します。
// 乱数の消費順序はプロバイダーの並び順に固定されています。
func (u *streamingUsecase) Availability(ctx context.Context, movieID int64) ([]entity.Provider, error) {
	rng := rand.New(rand.NewSource(movieID))

	providers := []entity.Provider{
		{
			Name:      "Netflix",
			Logo:      "/logos/netflix.png",
			Available: rng.Float64() > 0.5,
			URL:       fmt.Sprintf("https://netflix.com/title/%d", movieID),
			Price:     "Subscription",
			Quality:   "4K",
		},
		{
			Name:      "Amazon Prime Video",
			Logo:      "/logos/prime.png",
			Available: rng.Float64() > 0.5,
			URL:       fmt.Sprintf("https://primevideo.com/detail/%d", movieID),
			Price:     primePrice(rng),
			Quality:   "HD",
		},
		{
			Name:      "Disney+",
			Logo:      "/logos/disney.png",
			Available: rng.Float64() > 0.6,
			URL:       fmt.Sprintf("https://disneyplus.com/movies/%d", movieID),
			Price:     "Subscription",
			Quality:   "4K",
		},
	}
	return providers, nil
}

// primePrice はPrime Videoの価格帯を抽選します。
func primePrice(rng *rand.Rand) string {
	if rng.Float64() > 0.7 {
		return "Free"
	}
	return "$3.99"
}

// Search はクエリ文字列で各プラットフォームを横断検索します。
// クエリのFNVハッシュをシードにするため、同じクエリには常に同じ結果を返します。
func (u *streamingUsecase) Search(ctx context.Context, query string) (*entity.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	h := fnv.New64a()
	h.Write([]byte(query))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	escaped := url.QueryEscape(query)
	results := &entity.SearchResults{
		Netflix: entity.PlatformResult{
			Available: rng.Float64() > 0.5,
			URL:       "https://netflix.com/search?q=" + escaped,
		},
		Prime: entity.PlatformResult{
			Available: rng.Float64() > 0.5,
			URL:       "https://primevideo.com/search/ref=atv_nb_sr?phrase=" + escaped,
		},
		Disney: entity.PlatformResult{
			Available: rng.Float64() > 0.7,
			URL:       "https://disneyplus.com/search?q=" + escaped,
		},
	}
	return results, nil
}
