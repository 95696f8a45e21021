package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	mockRepo "tally/internal/mocks/repository"
	"tally/internal/usecase"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestCategoryService_Create_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateCategoryInput{
		Name:  "Groceries",
		Color: strPtr("#22c55e"),
	}

	fx.categoryRepo.On("NameExists", ctx, userID, "Groceries", (*uuid.UUID)(nil)).
		Return(false, nil)
	fx.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			category := args.Get(1).(*entity.Category)
			category.ID = categoryID
		}).
		Return(nil)

	category, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, categoryID, category.ID)
	assert.Equal(t, userID, category.UserID)
	assert.Equal(t, "Groceries", category.Name)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.On("NameExists", ctx, userID, "Groceries", (*uuid.UUID)(nil)).
		Return(true, nil)

	category, err := fx.service.Create(ctx, userID, &usecase.CreateCategoryInput{Name: "Groceries"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCategoryService_GetByID_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, UserID: userID, Name: "Groceries"}

	fx.categoryRepo.On("FindByID", ctx, categoryID, userID).Return(existing, nil)

	category, err := fx.service.GetByID(ctx, userID, categoryID)

	require.NoError(t, err)
	assert.Equal(t, existing, category)
}

// A read of another user's category must report as absent, not forbidden.
func TestCategoryService_GetByID_ForeignCategoryNotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindByID", ctx, categoryID, userID).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetByID(ctx, userID, categoryID)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Update_RenameConflict(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, UserID: userID, Name: "Groceries"}

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("CategoryRepo").Return(txCategoryRepo)

	txCategoryRepo.On("FindByID", ctx, categoryID, userID).Return(existing, nil)
	txCategoryRepo.On("NameExists", ctx, userID, "Transport", &categoryID).
		Return(true, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(passThroughTx(factory))

	category, err := fx.service.Update(ctx, userID, categoryID, &usecase.UpdateCategoryInput{
		Name: strPtr("Transport"),
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

// A category owned by another user must report as absent, not forbidden.
func TestCategoryService_Update_ForeignCategoryNotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("CategoryRepo").Return(txCategoryRepo)

	txCategoryRepo.On("FindByID", ctx, categoryID, userID).
		Return(nil, repository.ErrCategoryNotFound)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(passThroughTx(factory))

	category, err := fx.service.Update(ctx, userID, categoryID, &usecase.UpdateCategoryInput{
		Name: strPtr("Transport"),
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Update_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, UserID: userID, Name: "Groceries"}
	renamed := &entity.Category{ID: categoryID, UserID: userID, Name: "Food"}

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("CategoryRepo").Return(txCategoryRepo)

	txCategoryRepo.On("FindByID", ctx, categoryID, userID).Return(existing, nil).Once()
	txCategoryRepo.On("NameExists", ctx, userID, "Food", &categoryID).Return(false, nil)
	txCategoryRepo.On("UpdateFields", ctx, categoryID, userID, map[string]any{"name": "Food"}).
		Return(nil)
	txCategoryRepo.On("FindByID", ctx, categoryID, userID).Return(renamed, nil).Once()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(passThroughTx(factory))

	category, err := fx.service.Update(ctx, userID, categoryID, &usecase.UpdateCategoryInput{
		Name: strPtr("Food"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Food", category.Name)
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, UserID: userID, Name: "Groceries"}

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("CategoryRepo").Return(txCategoryRepo)

	txCategoryRepo.On("FindByID", ctx, categoryID, userID).Return(existing, nil)
	txCategoryRepo.On("HasExpenses", ctx, categoryID).Return(true, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(passThroughTx(factory))

	err := fx.service.Delete(ctx, userID, categoryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}

func TestCategoryService_Delete_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Category{ID: categoryID, UserID: userID, Name: "Groceries"}

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("CategoryRepo").Return(txCategoryRepo)

	txCategoryRepo.On("FindByID", ctx, categoryID, userID).Return(existing, nil)
	txCategoryRepo.On("HasExpenses", ctx, categoryID).Return(false, nil)
	txCategoryRepo.On("Delete", ctx, categoryID, userID).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(passThroughTx(factory))

	err := fx.service.Delete(ctx, userID, categoryID)

	require.NoError(t, err)
}
