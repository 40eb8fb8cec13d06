package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/service"
)

type MockAnalysisService struct {
	mock.Mock
}

var _ service.AnalysisService = (*MockAnalysisService)(nil)

func (m *MockAnalysisService) Analyze(ctx context.Context, req service.AnalyzeRequest) (*model.Analysis, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Analysis), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeDocument(ctx context.Context, doc model.Document, filename, role string) (*model.Analysis, error) {
	args := m.Called(ctx, doc, filename, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Analysis), args.Error(1)
}

func (m *MockAnalysisService) Roles() []catalog.RoleSummary {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]catalog.RoleSummary)
}
