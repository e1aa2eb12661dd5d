// Package recommend resolves a preference into a recommendation list.
//
// The generative service is tried once; any failure, of any kind, falls
// through to the keyword fallback, so Resolve always answers. The answer is
// handed to the request log after it is computed and never waits on it.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// Service is the RecommendationResolver.
type Service struct {
	Generative ports.GenerativeRecommender
	Fallback   ports.FallbackRecommender
	Recorder   ports.Recorder
	Metrics    ports.Metrics
	Logger     ports.Logger

	// ExpectedTitles is how many titles a generative answer must contain.
	ExpectedTitles int
	// NewID assigns a correlation id per resolution. Defaults to uuid.NewString.
	NewID func() string
	now   func() time.Time
}

// genreExplainer is implemented by fallbacks that can name the matched genre.
type genreExplainer interface {
	Explain(preference string) (string, bool)
}

// Resolve returns a recommendation for a non-empty preference. The only
// errors are ErrEmptyPreference for a blank preference and ErrInvariant for
// defects outside the two recommenders.
func (s *Service) Resolve(ctx context.Context, req domain.PreferenceRequest) (domain.RecommendationResult, error) {
	if s.Fallback == nil || s.Logger == nil {
		return domain.RecommendationResult{}, fmt.Errorf("%w: recommend.Service dependencies not satisfied", domain.ErrInvariant)
	}
	preference, err := domain.NewPreferenceRequest(req.Text)
	if err != nil {
		return domain.RecommendationResult{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	id := s.newID()
	result, genErr := s.fromGenerative(ctx, preference.Text)
	if genErr != nil {
		s.Logger.Warn("generative recommendation failed, using fallback", map[string]interface{}{
			"id":    id,
			"kind":  string(domain.KindOf(genErr)),
			"error": genErr.Error(),
		})
		s.observeFailure(domain.KindOf(genErr))

		result, err = s.fromFallback(preference.Text, id)
		if err != nil {
			s.Logger.Error("fallback recommendation broke its contract", err, map[string]interface{}{"id": id})
			return domain.RecommendationResult{}, err
		}
	}
	result.ID = id

	s.Logger.Info("recommendation resolved", map[string]interface{}{
		"id":     id,
		"source": string(result.Source),
		"count":  len(result.Movies),
	})
	if s.Metrics != nil {
		s.Metrics.ObserveRecommendation(result.Source)
	}

	if s.Recorder != nil {
		s.Recorder.Record(preference.Text, result.Raw())
	}
	return result, nil
}

// fromGenerative returns a *domain.GenerativeError on every failure,
// including answers that are not exactly ExpectedTitles titles.
func (s *Service) fromGenerative(ctx context.Context, preference string) (domain.RecommendationResult, error) {
	if s.Generative == nil {
		return domain.RecommendationResult{}, domain.NewConfigError(errors.New("no generative recommender configured"))
	}

	s.Logger.Debug("calling generative recommender", map[string]interface{}{"provider": s.Generative.Name()})
	start := s.clock()
	raw, err := s.Generative.Fetch(ctx, preference)
	if s.Metrics != nil {
		s.Metrics.ObserveGenerativeDuration(s.clock().Sub(start))
	}
	if err != nil {
		if domain.KindOf(err) == "" {
			err = domain.NewUpstreamError(0, "", err)
		}
		return domain.RecommendationResult{}, err
	}

	movies := domain.SplitMovies(raw)
	if want := s.expectedTitles(); len(movies) != want {
		return domain.RecommendationResult{}, domain.NewUpstreamError(0, raw,
			fmt.Errorf("%w: got %d titles, want %d", domain.ErrMalformedRecommendation, len(movies), want))
	}
	return domain.RecommendationResult{Movies: movies, Source: domain.SourceGenerative}, nil
}

func (s *Service) fromFallback(preference, id string) (domain.RecommendationResult, error) {
	movies := domain.SplitMovies(s.Fallback.Recommend(preference))
	if len(movies) == 0 {
		return domain.RecommendationResult{}, fmt.Errorf("%w: fallback returned no titles", domain.ErrInvariant)
	}
	if explainer, ok := s.Fallback.(genreExplainer); ok {
		genre, matched := explainer.Explain(preference)
		s.Logger.Debug("fallback genre selected", map[string]interface{}{
			"id":      id,
			"genre":   genre,
			"matched": matched,
		})
	}
	return domain.RecommendationResult{Movies: movies, Source: domain.SourceFallback}, nil
}

func (s *Service) observeFailure(kind domain.ErrorKind) {
	if s.Metrics != nil {
		s.Metrics.ObserveGenerativeFailure(kind)
	}
}

func (s *Service) expectedTitles() int {
	if s.ExpectedTitles <= 0 {
		return domain.DefaultRecommendationSize
	}
	return s.ExpectedTitles
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
