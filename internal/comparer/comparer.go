package comparer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/config"
	"github.com/aleister1102/writealign/internal/differ"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/aleister1102/writealign/internal/progress"
	"github.com/aleister1102/writealign/internal/projector"
	"github.com/aleister1102/writealign/internal/tokenizer"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Comparer runs comparisons with logging, admission control and the optional
// refinement, grouping and statistics steps. It is safe for concurrent use.
type Comparer struct {
	logger    zerolog.Logger
	config    config.ComparisonConfig
	validate  *validator.Validate
	statsCalc *differ.StatsCalculator
	progress  *progress.Progress
}

// ComparerBuilder provides a fluent interface for creating Comparer
type ComparerBuilder struct {
	logger   zerolog.Logger
	config   config.ComparisonConfig
	progress *progress.Progress
}

// NewComparerBuilder creates a new builder
func NewComparerBuilder(logger zerolog.Logger) *ComparerBuilder {
	return &ComparerBuilder{
		logger: logger,
		config: config.NewDefaultComparisonConfig(),
	}
}

// WithConfig sets the comparison configuration
func (b *ComparerBuilder) WithConfig(cfg config.ComparisonConfig) *ComparerBuilder {
	b.config = cfg
	return b
}

// WithProgress makes CompareBatch report finished requests to p
func (b *ComparerBuilder) WithProgress(p *progress.Progress) *ComparerBuilder {
	b.progress = p
	return b
}

// Build creates a new Comparer instance
func (b *ComparerBuilder) Build() (*Comparer, error) {
	validate := config.NewValidator()
	if err := validate.Struct(b.config); err != nil {
		return nil, common.NewConfigurationError("comparison_config", "", config.FormatValidationErrors("comparison config", err).Error())
	}

	diffCfg := differ.DefaultDiffConfig()
	diffCfg.Timeout = time.Duration(b.config.DiffTimeoutMs) * time.Millisecond

	return &Comparer{
		logger:    b.logger.With().Str("component", "Comparer").Logger(),
		config:    b.config,
		validate:  validate,
		statsCalc: differ.NewStatsCalculator(diffCfg),
		progress:  b.progress,
	}, nil
}

// NewComparer creates a Comparer with the given configuration
func NewComparer(logger zerolog.Logger, cfg config.ComparisonConfig) (*Comparer, error) {
	return NewComparerBuilder(logger).WithConfig(cfg).Build()
}

// Compare aligns the request's texts sentence by sentence. Missing texts are rebuilt from
// their spans and missing spans are derived from the diff. Malformed spans never fail the
// call: they are reported in Warnings and rebuilt when RebuildMalformedSpans is set.
func (c *Comparer) Compare(ctx context.Context, req models.ComparisonRequest) (*models.ComparisonResult, error) {
	startTime := time.Now()

	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	original := resolveText(req.OriginalText, req.OriginalSpans)
	corrected := resolveText(req.CorrectedText, req.CorrectedSpans)

	p := newPipeline(original, corrected)
	script, err := differ.DiffBounded(tokenizer.Texts(p.tokA), tokenizer.Texts(p.tokB), c.config.MaxTokens)
	if err != nil {
		c.logger.Warn().
			Int("tokens", p.tokenCount()).
			Int("max_tokens", c.config.MaxTokens).
			Msg("Comparison rejected by admission control")
		return nil, common.WrapError(err, "failed to compare texts")
	}
	p.diff(script)

	result := &models.ComparisonResult{
		Title:       req.Title,
		Corrections: req.Corrections,
	}
	if result.Corrections == nil {
		result.Corrections = []models.Correction{}
	}

	originalSpans, correctedSpans := c.resolveSpans(p, req, result)
	result.OriginalSpans = originalSpans
	result.CorrectedSpans = correctedSpans

	rows, err := p.rows(ctx, originalSpans, correctedSpans)
	if err != nil {
		return nil, common.WrapError(err, "comparison cancelled")
	}

	for i := range rows {
		if c.config.RefineKeywords {
			rows[i].OriginalSpans = RefineKeywords(rows[i].OriginalSpans, c.config.MinWords, c.config.MinKeywordLen)
			rows[i].CorrectedSpans = RefineKeywords(rows[i].CorrectedSpans, c.config.MinWords, c.config.MinKeywordLen)
		}
		if c.config.ComputeStats {
			stats := c.statsCalc.Calculate(rows[i].Original, rows[i].Corrected)
			rows[i].Stats = &stats
		}
	}

	if c.config.GroupSentences {
		result.Groups = GroupRows(len(rows))
		applyGroups(rows, result.Groups)
	}
	result.Rows = rows

	if req.Summary != nil {
		result.Summary = *req.Summary
	} else {
		result.Summary = Summarize(req.Corrections)
	}

	result.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	c.logger.Debug().
		Int("rows", len(rows)).
		Int("tokens", p.tokenCount()).
		Int("warnings", len(result.Warnings)).
		Int64("duration_ms", result.ProcessingTimeMs).
		Msg("Comparison completed")

	return result, nil
}

// CompareBatch compares several requests with at most BatchConcurrency running at once.
// Results keep the order of reqs. The first error cancels the remaining comparisons.
func (c *Comparer) CompareBatch(ctx context.Context, reqs []models.ComparisonRequest) ([]*models.ComparisonResult, error) {
	results := make([]*models.ComparisonResult, len(reqs))
	if c.progress != nil {
		c.progress.Start(len(reqs), "compare")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.config.BatchConcurrency))

	for i := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := c.Compare(gctx, reqs[i])
			if c.progress != nil {
				c.progress.Increment(err != nil)
			}
			if err != nil {
				return common.WrapErrorf(err, "request %d", i)
			}
			results[i] = result
			return nil
		})
	}

	err := g.Wait()
	c.finishProgress(ctx, err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Comparer) finishProgress(ctx context.Context, err error) {
	switch {
	case c.progress == nil:
	case err == nil:
		c.progress.SetStatus(progress.ProgressStatusComplete, "")
	case ctx.Err() != nil:
		c.progress.SetStatus(progress.ProgressStatusCancelled, ctx.Err().Error())
	default:
		c.progress.SetStatus(progress.ProgressStatusError, err.Error())
	}
}

// validateRequest checks span statuses and correction enums
func (c *Comparer) validateRequest(req models.ComparisonRequest) error {
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return common.WrapError(err, "failed to validate request")
	}
	return common.NewValidationError("request", nil, config.FormatValidationErrors("request", err).Error())
}

// resolveSpans picks the span lists to project. Nil lists are derived from the diff.
// Lists that do not match their text are reported; when RebuildMalformedSpans is set both
// lists are then replaced by the derived ones.
func (c *Comparer) resolveSpans(p *pipeline, req models.ComparisonRequest, result *models.ComparisonResult) (models.SpanList, models.SpanList) {
	originalSpans, correctedSpans := withDefaultStatus(req.OriginalSpans), withDefaultStatus(req.CorrectedSpans)

	malformed := false
	if originalSpans != nil && !c.checkSpans("original", originalSpans, p.original, result) {
		malformed = true
	}
	if correctedSpans != nil && !c.checkSpans("corrected", correctedSpans, p.corrected, result) {
		malformed = true
	}

	rebuild := malformed && c.config.RebuildMalformedSpans
	if !rebuild && originalSpans != nil && correctedSpans != nil {
		return originalSpans, correctedSpans
	}

	builtOriginal, builtCorrected := spansFromScript(p.script)
	if rebuild || originalSpans == nil {
		originalSpans = builtOriginal
	}
	if rebuild || correctedSpans == nil {
		correctedSpans = builtCorrected
	}
	return originalSpans, correctedSpans
}

// checkSpans reports whether spans annotate text exactly, recording a warning when not
func (c *Comparer) checkSpans(side string, spans models.SpanList, text string, result *models.ComparisonResult) bool {
	if projector.IsValidFor(spans, text) {
		return true
	}

	result.Warnings = append(result.Warnings,
		fmt.Sprintf("%s spans do not match the %s text (%d span bytes, %d text bytes)", side, side, spans.Len(), len(text)))
	c.logger.Warn().
		Str("side", side).
		Int("span_bytes", spans.Len()).
		Int("text_bytes", len(text)).
		Bool("rebuild", c.config.RebuildMalformedSpans).
		Msg("Span list does not match text")
	return false
}

// withDefaultStatus returns spans with any unset status replaced by neutral
func withDefaultStatus(spans models.SpanList) models.SpanList {
	if spans == nil {
		return nil
	}
	out := make(models.SpanList, len(spans))
	for i, span := range spans {
		if span.Status == "" {
			span.Status = models.StatusNeutral
		}
		out[i] = span
	}
	return out
}

// resolveText returns text, or the text of spans when text is empty
func resolveText(text string, spans models.SpanList) string {
	if text == "" && spans != nil {
		return spans.Text()
	}
	return text
}
