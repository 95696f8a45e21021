package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
)

// MockExpenseRepository is a mock implementation of
// repository.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

var _ repository.ExpenseRepository = (*MockExpenseRepository)(nil)

// NewMockExpenseRepository creates a new mock and registers expectation
// checks with the test's cleanup.
func NewMockExpenseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExpenseRepository {
	m := &MockExpenseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	args := m.Called(ctx, expense)

	return args.Error(0)
}

func (m *MockExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter entity.ExpenseFilter) ([]*entity.ExpenseWithCategory, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ExpenseWithCategory), args.Error(1)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithCategory, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ExpenseWithCategory), args.Error(1)
}

func (m *MockExpenseRepository) UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, userID, fields)

	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}

// MockSummaryRepository is a mock implementation of
// repository.SummaryRepository.
type MockSummaryRepository struct {
	mock.Mock
}

var _ repository.SummaryRepository = (*MockSummaryRepository)(nil)

// NewMockSummaryRepository creates a new mock and registers expectation
// checks with the test's cleanup.
func NewMockSummaryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSummaryRepository {
	m := &MockSummaryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSummaryRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlySummary, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MonthlySummary), args.Error(1)
}

func (m *MockSummaryRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.CategorySummary, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CategorySummary), args.Error(1)
}
