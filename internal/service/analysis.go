// Package service sequences the analyzers into a complete résumé analysis.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"atscv/internal/analyzer"
	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/scoring"
)

var (
	ErrFilenameRequired = errors.New("filename is required")
	ErrEmptyDocument    = errors.New("document is empty")
)

// keyTermCount is the number of TF-IDF terms kept in the aggregate.
const keyTermCount = 15

// AnalyzeRequest is one uploaded résumé.
type AnalyzeRequest struct {
	Filename string
	Data     []byte
	Role     string
}

// DocumentParser extracts plain text from an uploaded file.
type DocumentParser interface {
	Parse(ctx context.Context, filename string, data []byte) (model.Document, error)
}

// Archive persists a finished analysis and returns where it was written.
type Archive interface {
	Save(ctx context.Context, a *model.Analysis) (string, error)
}

// Recorder receives analysis outcomes, typically prometheus collectors.
type Recorder interface {
	ObserveSuccess(score int, elapsed time.Duration)
	ObserveFailure(elapsed time.Duration)
}

// AnalysisService defines the résumé analysis use cases.
type AnalysisService interface {
	// Analyze parses the upload and runs the full analysis for req.Role.
	Analyze(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error)

	// AnalyzeDocument runs the analysis on already extracted text.
	AnalyzeDocument(ctx context.Context, doc model.Document, filename, role string) (*model.Analysis, error)

	// Roles lists the available target roles in catalog order.
	Roles() []catalog.RoleSummary
}

// Option configures an AnalysisService.
type Option func(*analysisService)

// WithArchive saves every successful analysis. A save failure fails the analysis.
func WithArchive(a Archive) Option {
	return func(s *analysisService) { s.archive = a }
}

// WithRecorder reports each outcome to r.
func WithRecorder(r Recorder) Option {
	return func(s *analysisService) { s.recorder = r }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *analysisService) { s.log = l }
}

// WithDefaultRole sets the role used when a request names none.
func WithDefaultRole(id string) Option {
	return func(s *analysisService) {
		if id != "" {
			s.defaultRole = id
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *analysisService) { s.now = now }
}

type analysisService struct {
	parser      DocumentParser
	archive     Archive
	recorder    Recorder
	log         zerolog.Logger
	tracer      trace.Tracer
	defaultRole string
	now         func() time.Time
}

// NewAnalysisService constructs an AnalysisService around parser.
func NewAnalysisService(parser DocumentParser, opts ...Option) AnalysisService {
	s := &analysisService{
		parser:      parser,
		log:         zerolog.Nop(),
		tracer:      otel.Tracer("atscv/internal/service"),
		defaultRole: catalog.DefaultRoleID,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *analysisService) Roles() []catalog.RoleSummary {
	return catalog.Roles()
}

func (s *analysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error) {
	start := time.Now()
	a, err := s.analyze(ctx, req)
	s.record(a, err, time.Since(start))
	return a, err
}

func (s *analysisService) AnalyzeDocument(ctx context.Context, doc model.Document, filename, role string) (*model.Analysis, error) {
	start := time.Now()
	a, err := s.analyzeDocument(ctx, doc, filename, role)
	s.record(a, err, time.Since(start))
	return a, err
}

func (s *analysisService) analyze(ctx context.Context, req AnalyzeRequest) (*model.Analysis, error) {
	if req.Filename == "" {
		return nil, ErrFilenameRequired
	}
	if len(req.Data) == 0 {
		return nil, ErrEmptyDocument
	}

	parseCtx, span := s.tracer.Start(ctx, "parse", trace.WithAttributes(
		attribute.String("file.name", req.Filename),
		attribute.Int("file.size", len(req.Data)),
	))
	doc, err := s.parser.Parse(parseCtx, req.Filename, req.Data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, fmt.Errorf("parse document: %w", err)
	}
	span.SetAttributes(attribute.Int("document.pages", doc.PageCount))
	span.End()

	return s.analyzeDocument(ctx, doc, req.Filename, req.Role)
}

func (s *analysisService) analyzeDocument(ctx context.Context, doc model.Document, filename, roleID string) (*model.Analysis, error) {
	if roleID == "" {
		roleID = s.defaultRole
	}
	ctx, span := s.tracer.Start(ctx, "analyze", trace.WithAttributes(attribute.String("role", roleID)))
	defer span.End()

	var profile *catalog.JobRoleProfile
	if role, ok := catalog.Role(roleID); ok {
		profile = &role
	} else {
		s.log.Warn().Str("role", roleID).Msg("unknown target role, analyzing without profile")
	}

	text := doc.Text
	a := &model.Analysis{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}

	s.step(ctx, "analyze.basic", func() { a.Basic = analyzer.AnalyzeText(text) })
	s.step(ctx, "analyze.experience", func() { a.Experience = analyzer.AnalyzeExperience(text) })
	s.step(ctx, "analyze.keywords", func() { a.Keywords = analyzer.AnalyzeKeywords(text, profile) })
	s.step(ctx, "analyze.format", func() { a.Format = analyzer.AnalyzeFormat(text, doc.PageCount) })
	s.step(ctx, "analyze.entities", func() {
		a.CategorizedSkills = analyzer.CategorizeSkills(a.Basic.Skills)
		a.Entities = analyzer.ExtractEntities(text)
		a.Contact = analyzer.ExtractContact(text)
		a.KeyTerms = analyzer.ExtractKeyTerms(text, keyTermCount)
	})

	s.step(ctx, "score", func() {
		keywordCount := a.Keywords.KeywordCount
		if keywordCount == 0 {
			keywordCount = len(a.Basic.KeywordsFound)
		}
		a.ATSScores = scoring.CalculateATSScore(keywordCount, len(a.Basic.Skills), a.Basic.WordCount, &a.Format)
		a.Basic.ATSScore = a.ATSScores.Total
	})

	a.DocumentInfo = model.DocumentInfo{
		FileType:       strings.ToUpper(strings.TrimPrefix(filepath.Ext(filename), ".")),
		FileName:       filepath.Base(filename),
		Pages:          doc.PageCount,
		CharacterCount: utf8.RuneCountInString(text),
		TargetRole:     roleID,
	}

	s.step(ctx, "recommend", func() {
		recs := scoring.GenerateRecommendations(*a, text, roleID)
		a.Recommendations = recs.Recommendations
		a.Priority = recs.Priority
		a.TotalRecommendations = recs.TotalRecommendations
	})

	span.SetAttributes(attribute.Int("ats.score", a.ATSScores.Total))

	if s.archive != nil {
		loc, err := s.archive.Save(ctx, a)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("archive report: %w", err)
		}
		a.ReportLocation = loc
	}

	s.log.Info().
		Str("analysis_id", a.ID).
		Str("file", a.DocumentInfo.FileName).
		Str("role", roleID).
		Int("score", a.ATSScores.Total).
		Int("recommendations", a.TotalRecommendations).
		Msg("analysis_completed")

	return a, nil
}

func (s *analysisService) step(ctx context.Context, name string, fn func()) {
	_, span := s.tracer.Start(ctx, name)
	defer span.End()
	fn()
}

func (s *analysisService) record(a *model.Analysis, err error, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}
	if err != nil {
		s.recorder.ObserveFailure(elapsed)
		return
	}
	s.recorder.ObserveSuccess(a.ATSScores.Total, elapsed)
}
