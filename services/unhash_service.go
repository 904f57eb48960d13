package services

import (
	"fmt"
	"hashlens/errors"
	"hashlens/repositories"
	"hashlens/unhash"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type IUnhashService interface {
	Fit(docs []string, resume bool) (repositories.FitRun, error)
	Restore() error
	Reset() error
	Runs(limit *int) ([]repositories.FitRun, error)
}

// UnhashService keeps an invertible vectorizer in sync with the term-count store.
type UnhashService struct {
	log    *slog.Logger
	ivec   *unhash.InvertibleHashingVectorizer
	counts repositories.ITermCountRepository
	runs   repositories.IFitRunRepository
	now    func() time.Time
}

func NewUnhashService(log *slog.Logger, ivec *unhash.InvertibleHashingVectorizer,
	counts repositories.ITermCountRepository, runs repositories.IFitRunRepository) *UnhashService {
	return &UnhashService{log: log, ivec: ivec, counts: counts, runs: runs, now: time.Now}
}

func (s *UnhashService) Vectorizer() *unhash.InvertibleHashingVectorizer {
	return s.ivec
}

// Fit learns the terms of docs. With resume the stored counts are loaded first and docs
// are added on top of them, otherwise the stored counts are replaced.
// When persisting fails the vectorizer and the store are put back to the counts held before the call.
func (s *UnhashService) Fit(docs []string, resume bool) (repositories.FitRun, error) {
	if len(docs) == 0 {
		return repositories.FitRun{}, errors.ErrNoDocuments
	}
	prior := s.ivec.Unhasher().Counts()

	if resume {
		if err := s.Restore(); err != nil {
			return repositories.FitRun{}, err
		}
		s.ivec.PartialFit(docs)
	} else {
		s.ivec.Fit(docs)
	}

	counts := s.ivec.Unhasher().Counts()
	if err := s.counts.Store(counts); err != nil {
		s.rollback(prior, false)
		return repositories.FitRun{}, fmt.Errorf("storing term counts: %w", err)
	}

	run := repositories.FitRun{
		ID:        uuid.New(),
		At:        s.now().UTC(),
		Documents: len(docs),
		Terms:     len(counts),
		NFeatures: s.ivec.NFeatures(),
		Resumed:   resume,
	}
	if err := s.runs.Store(run); err != nil {
		s.rollback(prior, true)
		return repositories.FitRun{}, fmt.Errorf("storing fit run: %w", err)
	}

	s.log.Info("Fit completed",
		"run", run.ID,
		"documents", run.Documents,
		"terms", run.Terms,
		"known_columns", s.ivec.FeatureNames(true).Known(),
		"resumed", resume)
	return run, nil
}

// rollback reloads prior into the vectorizer, and into the store too when it already holds the new counts.
func (s *UnhashService) rollback(prior []unhash.TermCount, stored bool) {
	s.ivec.Unhasher().LoadCounts(prior)
	if !stored {
		return
	}
	if err := s.counts.Store(prior); err != nil {
		s.log.Error("Term counts could not be rolled back", "error", err)
	}
}

// Restore loads the stored counts into the vectorizer without fitting anything new.
func (s *UnhashService) Restore() error {
	counts, err := s.counts.Load()
	if err != nil {
		return fmt.Errorf("loading term counts: %w", err)
	}
	s.ivec.Unhasher().LoadCounts(counts)
	s.log.Debug("Term counts restored", "terms", len(counts))
	return nil
}

func (s *UnhashService) Reset() error {
	if err := s.counts.Clear(); err != nil {
		return err
	}
	s.ivec.Unhasher().LoadCounts(nil)
	s.log.Info("Term counts cleared")
	return nil
}

func (s *UnhashService) Runs(limit *int) ([]repositories.FitRun, error) {
	return s.runs.List(limit)
}
