// Package stage wires the text cleaning pipeline stage to its resources.
package stage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iryzhkov/nlp-pipeline/internal/config"
	"github.com/iryzhkov/nlp-pipeline/internal/corpus"
	"github.com/iryzhkov/nlp-pipeline/internal/lemma"
	"github.com/iryzhkov/nlp-pipeline/internal/logger"
	"github.com/iryzhkov/nlp-pipeline/internal/markup"
	"github.com/iryzhkov/nlp-pipeline/internal/models"
	"github.com/iryzhkov/nlp-pipeline/internal/normalizer"
	"github.com/iryzhkov/nlp-pipeline/internal/tokenize"
	"github.com/iryzhkov/nlp-pipeline/internal/validator"
)

// Name is the registered name of the stage.
const Name = "text_cleaning"

// Report summarizes one completed run.
type Report struct {
	RunID    string
	Paths    corpus.Paths
	Digest   string
	Stats    models.CorpusStats
	Duration time.Duration
}

// TextCleaning reads a topic's raw corpus, normalizes it and writes the
// cleaned corpus.
type TextCleaning struct {
	cfg       *config.Config
	processor *normalizer.Processor
	log       *logger.Logger
}

// New creates the stage around an already built processor.
func New(cfg *config.Config, processor *normalizer.Processor, log *logger.Logger) *TextCleaning {
	processor.SetPreviewWidth(cfg.Logging.PreviewWidth)

	return &TextCleaning{
		cfg:       cfg,
		processor: processor,
		log:       log.Stage(Name),
	}
}

// NewFromConfig builds the stage with the wiki cleaner, the word tokenizer
// and, unless disabled, the English lemma dictionary. A dictionary that
// cannot be loaded is an error here, before any input is touched.
func NewFromConfig(cfg *config.Config, log *logger.Logger) (*TextCleaning, error) {
	var lemmatizer normalizer.Lemmatizer = lemma.Identity{}

	if cfg.Cleaning.Lemmatize {
		dict, err := lemma.NewEnglish()
		if err != nil {
			return nil, fmt.Errorf("failed to load lemmatizer: %w", err)
		}

		lemmatizer = dict
	}

	processor := normalizer.NewProcessor(
		markup.NewWikiCleaner(),
		tokenize.NewWordTokenizerWithJoiners(cfg.Cleaning.Joiners),
		lemmatizer,
		log.Stage(Name),
	)

	return New(cfg, processor, log), nil
}

// Name returns the stage name.
func (s *TextCleaning) Name() string {
	return Name
}

// PreRun logs the stage banner.
func (s *TextCleaning) PreRun() {
	s.log.Info(strings.Repeat("=", 40))
	s.log.Info("Executing text cleaning stage")
	s.log.Info(strings.Repeat("-", 40))
}

// Run cleans the corpus of topic. The output file is written once, after
// the whole corpus has been processed; on error it is left untouched.
func (s *TextCleaning) Run(topic string) (*Report, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := s.log.With("run_id", runID, "topic", topic)

	log.Info("Starting text cleaning...")

	paths, err := s.cfg.TopicPaths(topic)
	if err != nil {
		return nil, err
	}

	raw, err := corpus.Read(paths.Input)
	if err != nil {
		return nil, err
	}

	log.Debug("Read raw corpus", "path", paths.Input, "bytes", len(raw))

	text, stats := s.processor.NormalizeWithStats(raw)

	if err := corpus.Write(paths.Output, text); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    runID,
		Paths:    paths,
		Digest:   corpus.Digest(text),
		Stats:    stats,
		Duration: time.Since(start),
	}

	log.Info(fmt.Sprintf("Saved the cleaned text. Contains ~ %d tokens", stats.Tokens),
		"path", paths.Output,
		"articles", stats.Articles,
		"bytes", stats.Bytes,
		"blake3", report.Digest,
		"duration", report.Duration,
	)

	return report, nil
}

// Check validates the cleaned corpus previously written for topic.
func (s *TextCleaning) Check(topic string) (*validator.ValidationResult, error) {
	paths, err := s.cfg.TopicPaths(topic)
	if err != nil {
		return nil, err
	}

	text, err := corpus.Read(paths.Output)
	if err != nil {
		return nil, err
	}

	result := validator.NewCorpusValidator().Validate(text)

	s.log.Info("Checked cleaned corpus",
		"topic", topic,
		"valid", result.IsValid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"tokens", result.Stats.Tokens,
	)

	return result, nil
}
