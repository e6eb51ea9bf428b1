// Package usecase error definitions.
package usecase

import "errors"

// ErrQueryRequired is returned when a smart search query is empty.
var ErrQueryRequired = errors.New("query is required")

// ErrReviewTextRequired is returned when a review analysis request has
// no text to analyze.
var ErrReviewTextRequired = errors.New("review text is required")

// ErrAnalyzerFailed wraps upstream LLM failures so transports can map
// them to a gateway error.
var ErrAnalyzerFailed = errors.New("movie analyzer failed")
