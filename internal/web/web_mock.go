package web

import (
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/schema"
	"github.com/stretchr/testify/mock"
)

// MockChartProvider is a mock implementation of contract.ChartProvider.
type MockChartProvider struct {
	mock.Mock
}

var _ contract.ChartProvider = &MockChartProvider{} // Compile-time check

// Options mocks the Options method.
func (m *MockChartProvider) Options() []schema.Selection {
	ret := m.Called()
	opts, _ := ret.Get(0).([]schema.Selection)
	return opts
}

// Update mocks the Update method.
func (m *MockChartProvider) Update(group string) schema.ChartSpec {
	ret := m.Called(group)
	spec, _ := ret.Get(0).(schema.ChartSpec)
	return spec
}
