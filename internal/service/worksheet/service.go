// Package worksheet builds the four-part worksheet for a passage:
// vocabulary fill-in-the-blanks and a video comprehension activity.
package worksheet

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

type textGenerator interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// Service generates worksheets.
type Service struct {
	gen     textGenerator
	limits  llm.Limits
	catalog []Video
	log     *slog.Logger
}

// NewService creates a worksheet service backed by the built-in safe video
// catalog.
func NewService(log *slog.Logger, gen textGenerator, limits llm.Limits) *Service {
	return &Service{
		gen:     gen,
		limits:  limits,
		catalog: SafeVideos(),
		log:     log.With("service", "worksheet"),
	}
}

// Generate builds a worksheet for passage. The collection words seed the
// vocabulary exercises; without them general academic vocabulary is used.
// Both halves are requested concurrently and either failing fails the whole
// worksheet.
func (s *Service) Generate(ctx context.Context, passage *domain.Passage, words []domain.SavedWord) (*domain.Worksheet, error) {
	if passage == nil {
		return nil, domain.NewValidationError("passage", "generate a passage first")
	}

	start := time.Now()
	var (
		exercises []domain.VocabExercise
		activity  *domain.VideoActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exercises, err = s.vocabExercises(gctx, passage, words)
		return err
	})
	g.Go(func() error {
		var err error
		activity, err = s.videoActivity(gctx, passage)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "worksheet generated",
		slog.String("passage_id", passage.ID.String()),
		slog.Int("exercises", len(exercises)),
		slog.String("video_url", activity.URL),
		slog.Int("mcqs", len(activity.MCQs)),
		slog.Int("true_false", len(activity.TrueFalse)),
		slog.Duration("duration", time.Since(start)),
	)

	return &domain.Worksheet{
		VocabExercises: exercises,
		VideoActivity:  *activity,
	}, nil
}
