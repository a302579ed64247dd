// Package pipeline provides the high-level orchestration for one
// resume-to-job screening run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jfields/resume-screener/internal/experience"
	"github.com/jfields/resume-screener/internal/extract"
	"github.com/jfields/resume-screener/internal/match"
	"github.com/jfields/resume-screener/internal/recommend"
	"github.com/jfields/resume-screener/internal/scoring"
	"github.com/jfields/resume-screener/internal/semantic"
	"github.com/jfields/resume-screener/internal/types"
	"github.com/jfields/resume-screener/internal/vocab"
)

// defaultSemanticTimeout bounds the external similarity lookup, the only
// genuinely slow step in the pipeline.
const defaultSemanticTimeout = 30 * time.Second

// Options holds configuration for one screening run. ResumeText and JobText
// are the only required fields; everything else has a sensible default.
type Options struct {
	ResumeText string
	JobText    string

	// Vocabulary defaults to vocab.Default() when nil.
	Vocabulary *types.SkillVocabulary
	// CertificationKeywords defaults to vocab.CertificationKeywords().
	CertificationKeywords []string

	// Semantic supplies the soft similarity signal. A nil scorer, a timeout,
	// or any scorer failure degrades the signal to 0 without aborting the run.
	Semantic        semantic.Scorer
	SemanticTimeout time.Duration

	// MergeOverlaps switches experience aggregation to merge overlapping
	// date ranges instead of naively summing them.
	MergeOverlaps bool

	// Now is the clock used to resolve "Present" date endpoints. Defaults
	// to time.Now; tests inject a fixed clock for determinism.
	Now func() time.Time

	// Verbose enables step-by-step progress output.
	Verbose bool
}

// documentSignals extracts every per-document signal from one text blob.
func documentSignals(text string, extractor *extract.SkillExtractor, certKeywords []string, now time.Time, opts experience.Options) types.DocumentSignals {
	return types.DocumentSignals{
		Skills:          extractor.Extract(text),
		Certifications:  extract.Certifications(text, certKeywords),
		Projects:        extract.Projects(text, vocab.ProjectKeywords()),
		Extracurricular: extract.Extracurricular(text, vocab.ExtracurricularKeywords()),
		Years:           experience.TotalYears(text, now, opts),
	}
}

// RunScreening scores one resume against one job description. The result is
// deterministic for fixed inputs, a fixed clock, and a fixed semantic
// scorer. All computation is side-effect-free, so cancellation simply
// discards the in-flight run.
func RunScreening(ctx context.Context, opts Options) (*types.ScreeningResult, error) {
	v := opts.Vocabulary
	if v == nil {
		v = vocab.Default()
	}
	certKeywords := opts.CertificationKeywords
	if certKeywords == nil {
		certKeywords = vocab.CertificationKeywords()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	semanticTimeout := opts.SemanticTimeout
	if semanticTimeout <= 0 {
		semanticTimeout = defaultSemanticTimeout
	}

	extractor := extract.NewSkillExtractor(v)
	expOpts := experience.Options{MergeOverlaps: opts.MergeOverlaps}

	// Bias terms are stripped from the job text before any matching runs.
	jobText := extract.RemoveBiasTerms(opts.JobText)

	stepf(opts.Verbose, "Extracting signals from resume and job description...")

	var (
		resumeSignals types.DocumentSignals
		jobSignals    types.DocumentSignals
		semanticScore float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resumeSignals = documentSignals(opts.ResumeText, extractor, certKeywords, now(), expOpts)
		return nil
	})

	g.Go(func() error {
		jobSignals = documentSignals(jobText, extractor, certKeywords, now(), expOpts)
		return nil
	})

	g.Go(func() error {
		semanticScore = semanticOrDefault(gCtx, opts.Semantic, opts.ResumeText, jobText, semanticTimeout, opts.Verbose)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requiredYears := experience.RequiredYears(jobText)

	stepf(opts.Verbose, "Matching %d resume skills against job description...", len(resumeSignals.Skills))
	matchResult := match.Skills(resumeSignals.Skills, jobText, extractor)

	stepf(opts.Verbose, "Scoring...")
	breakdown := scoring.Score(scoring.Inputs{
		SkillCoverage: matchResult.Coverage,
		SemanticScore: semanticScore,
		ResumeYears:   resumeSignals.Years,
		RequiredYears: requiredYears,
		CertCount:     len(resumeSignals.Certifications),
		CertUniverse:  len(certKeywords),
		ProjectCount:  len(resumeSignals.Projects),
		ExtraCount:    len(resumeSignals.Extracurricular),
	})

	recommendations := recommend.Generate(recommend.Inputs{
		MissingSkills: matchResult.Missing,
		ResumeYears:   resumeSignals.Years,
		RequiredYears: requiredYears,
		CertCount:     len(resumeSignals.Certifications),
		ProjectCount:  len(resumeSignals.Projects),
		ExtraCount:    len(resumeSignals.Extracurricular),
	})

	return &types.ScreeningResult{
		ID:              uuid.New().String(),
		Resume:          resumeSignals,
		Job:             jobSignals,
		RequiredYears:   requiredYears,
		Match:           matchResult,
		Breakdown:       breakdown,
		Verdict:         scoring.VerdictFor(breakdown.FinalScore),
		Recommendations: recommendations,
	}, nil
}

// semanticOrDefault runs the external similarity lookup under its own
// timeout and degrades to 0 on any failure; scoring must remain best-effort.
func semanticOrDefault(ctx context.Context, scorer semantic.Scorer, a, b string, timeout time.Duration, verbose bool) float64 {
	if scorer == nil {
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	score, err := scorer.Score(ctx, a, b)
	if err != nil {
		stepf(verbose, "Warning: semantic similarity unavailable (%v), using 0", err)
		return 0
	}
	return score
}

func stepf(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
