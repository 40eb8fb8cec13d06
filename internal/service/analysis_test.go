package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/parser"
)

const sampleCV = `Ana Pérez
ana.perez@example.com
Resumen
Desarrolladora con experiencia en desarrollo full stack y APIs REST.
Experiencia
Senior Developer en ACME 2018 - 2023
- Reduje el tiempo de respuesta un 40% migrando servicios a Go
- Lideré un equipo de 5 personas usando Docker y Kubernetes
Educación
Ingeniería Informática, Universidad de Chile 2012 - 2017
Habilidades
JavaScript, React, Node.js, Python, SQL, Docker, Git`

var fixedNow = time.Date(2024, time.March, 5, 10, 20, 30, 456000000, time.UTC)

type stubParser struct {
	doc model.Document
	err error
}

func (p stubParser) Parse(context.Context, string, []byte) (model.Document, error) {
	return p.doc, p.err
}

type fakeRecorder struct {
	successes []int
	failures  int
}

func (r *fakeRecorder) ObserveSuccess(score int, _ time.Duration) { r.successes = append(r.successes, score) }
func (r *fakeRecorder) ObserveFailure(time.Duration)             { r.failures++ }

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Save(ctx context.Context, a *model.Analysis) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func newTestService(p DocumentParser, opts ...Option) AnalysisService {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewAnalysisService(p, opts...)
}

func TestAnalysisService_Analyze(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(stubParser{doc: model.Document{Text: sampleCV, PageCount: 1}}, WithRecorder(rec))

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{Filename: "uploads/cv_ana.pdf", Data: []byte("%PDF"), Role: "FULLSTACK_DEVELOPER"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, fixedNow, a.CreatedAt)
	assert.Equal(t, model.DocumentInfo{
		FileType:       "PDF",
		FileName:       "cv_ana.pdf",
		Pages:          1,
		CharacterCount: len([]rune(sampleCV)),
		TargetRole:     "FULLSTACK_DEVELOPER",
	}, a.DocumentInfo)

	assert.Equal(t, a.ATSScores.Total, a.Basic.ATSScore)
	assert.GreaterOrEqual(t, a.ATSScores.Total, 0)
	assert.LessOrEqual(t, a.ATSScores.Total, 100)
	assert.Equal(t, a.Format.FormatScore.Total, a.ATSScores.Format)
	assert.LessOrEqual(t, len(a.KeyTerms), keyTermCount)
	assert.NotNil(t, a.Keywords.ProfileMatch)
	assert.Contains(t, a.Basic.Skills, "docker")
	assert.Equal(t, []string{"ana.perez@example.com"}, a.Contact.Emails)
	assert.Equal(t, a.Recommendations.Total(), a.TotalRecommendations)
	assert.NotEmpty(t, a.Priority)
	assert.Empty(t, a.ReportLocation)

	var skillCount int
	for _, skills := range a.CategorizedSkills {
		skillCount += len(skills)
	}
	assert.Equal(t, len(a.Basic.Skills), skillCount)

	assert.Equal(t, []int{a.ATSScores.Total}, rec.successes)
	assert.Zero(t, rec.failures)
}

func TestAnalysisService_Deterministic(t *testing.T) {
	svc := newTestService(stubParser{})
	doc := model.Document{Text: sampleCV, PageCount: 2}

	first, err := svc.AnalyzeDocument(context.Background(), doc, "cv.docx", "")
	require.NoError(t, err)
	second, err := svc.AnalyzeDocument(context.Background(), doc, "cv.docx", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	second.ID = first.ID
	assert.Equal(t, first, second)
}

func TestAnalysisService_DefaultRole(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		wantRole string
	}{
		{"catalog default", nil, catalog.DefaultRoleID},
		{"configured default", []Option{WithDefaultRole("DEVOPS_ENGINEER")}, "DEVOPS_ENGINEER"},
		{"empty option keeps catalog default", []Option{WithDefaultRole("")}, catalog.DefaultRoleID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(stubParser{}, tt.opts...)

			a, err := svc.AnalyzeDocument(context.Background(), model.Document{Text: sampleCV, PageCount: 1}, "cv.docx", "")
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, a.DocumentInfo.TargetRole)
			assert.NotNil(t, a.Keywords.ProfileMatch)
		})
	}
}

func TestAnalysisService_UnknownRole(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(stubParser{}, WithLogger(zerolog.New(&buf)))

	a, err := svc.AnalyzeDocument(context.Background(), model.Document{Text: sampleCV, PageCount: 1}, "cv.pdf", "ASTRONAUT")
	require.NoError(t, err)

	assert.Equal(t, "ASTRONAUT", a.DocumentInfo.TargetRole)
	assert.Nil(t, a.Keywords.ProfileMatch)
	assert.Empty(t, a.Recommendations.Skills)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "ASTRONAUT")
}

func TestAnalysisService_EmptyText(t *testing.T) {
	svc := newTestService(stubParser{})

	a, err := svc.AnalyzeDocument(context.Background(), model.Document{PageCount: 1}, "cv.pdf", "")
	require.NoError(t, err)

	assert.Zero(t, a.Basic.WordCount)
	assert.NotNil(t, a.Basic.Skills)
	assert.NotNil(t, a.Format.FormatIssues)
	assert.Positive(t, a.TotalRecommendations)
}

func TestAnalysisService_Analyze_Errors(t *testing.T) {
	parseErr := errors.New("corrupt xref table")

	tests := []struct {
		name    string
		parser  DocumentParser
		req     AnalyzeRequest
		wantErr error
	}{
		{
			name:    "missing filename",
			parser:  stubParser{},
			req:     AnalyzeRequest{Data: []byte("x")},
			wantErr: ErrFilenameRequired,
		},
		{
			name:    "empty data",
			parser:  stubParser{},
			req:     AnalyzeRequest{Filename: "cv.pdf"},
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "unsupported extension",
			parser:  parser.New(),
			req:     AnalyzeRequest{Filename: "cv.txt", Data: []byte("hola")},
			wantErr: parser.ErrUnsupportedFormat,
		},
		{
			name:    "parser failure",
			parser:  stubParser{err: parseErr},
			req:     AnalyzeRequest{Filename: "cv.pdf", Data: []byte("%PDF")},
			wantErr: parseErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			svc := newTestService(tt.parser, WithRecorder(rec))

			a, err := svc.Analyze(context.Background(), tt.req)

			assert.Nil(t, a)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, rec.failures)
			assert.Empty(t, rec.successes)
		})
	}
}

func TestAnalysisService_Archive(t *testing.T) {
	doc := model.Document{Text: sampleCV, PageCount: 1}

	t.Run("location is attached", func(t *testing.T) {
		arch := new(mockArchive)
		arch.On("Save", mock.Anything, mock.MatchedBy(func(a *model.Analysis) bool {
			return a.DocumentInfo.FileName == "cv.pdf" && a.TotalRecommendations == a.Recommendations.Total()
		})).Return("results/analisis.json", nil).Once()

		svc := newTestService(stubParser{}, WithArchive(arch))
		a, err := svc.AnalyzeDocument(context.Background(), doc, "cv.pdf", "")

		require.NoError(t, err)
		assert.Equal(t, "results/analisis.json", a.ReportLocation)
		arch.AssertExpectations(t)
	})

	t.Run("failure aborts the analysis", func(t *testing.T) {
		arch := new(mockArchive)
		arch.On("Save", mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()
		rec := &fakeRecorder{}

		svc := newTestService(stubParser{}, WithArchive(arch), WithRecorder(rec))
		a, err := svc.AnalyzeDocument(context.Background(), doc, "cv.pdf", "")

		assert.Nil(t, a)
		assert.ErrorContains(t, err, "archive report: disk full")
		assert.Equal(t, 1, rec.failures)
		arch.AssertExpectations(t)
	})
}

func TestAnalysisService_Roles(t *testing.T) {
	svc := newTestService(stubParser{})
	assert.Equal(t, catalog.Roles(), svc.Roles())
}
