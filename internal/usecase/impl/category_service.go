package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/usecase"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// Create adds a category for the user. Names are unique per user; the unique
// index backs up the pre-check for concurrent creates.
func (srv *categoryService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	taken, err := srv.categoryRepo.NameExists(ctx, userID, input.Name, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category name")
	}
	if taken {
		return nil, domainerrors.ErrCategoryNameTaken.WrapMessage("category name already exists")
	}

	category := &entity.Category{
		UserID: userID,
		Name:   input.Name,
		Color:  input.Color,
		Icon:   input.Icon,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.logger.Debug("Category created", slog.Any("userID", userID), slog.Any("categoryID", category.ID))

	return category, nil
}

// List returns all of the user's categories ordered by name.
func (srv *categoryService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetByID returns the user's category. Rows owned by other users report the
// same not-found error as true absence.
func (srv *categoryService) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Update applies the non-nil fields of input to the user's category. The
// existence check, name check and update share one transaction.
func (srv *categoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Color != nil {
		fields["color"] = *input.Color
	}
	if input.Icon != nil {
		fields["icon"] = *input.Icon
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, categoryID, userID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		if input.Name != nil {
			taken, err := categoryRepo.NameExists(ctx, userID, *input.Name, &categoryID)
			if err != nil {
				return errors.Wrap(err, "failed to check category name")
			}
			if taken {
				return domainerrors.ErrCategoryNameTaken.WrapMessage("category name already exists")
			}
		}

		if len(fields) > 0 {
			if err := categoryRepo.UpdateFields(ctx, categoryID, userID, fields); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
				}

				return errors.Wrap(err, "failed to update category")
			}
		}

		category, err := categoryRepo.FindByID(ctx, categoryID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload category")
		}
		updated = category

		return nil
	})

	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Category updated", slog.Any("userID", userID), slog.Any("categoryID", categoryID))

	return updated, nil
}

// Delete removes the user's category. Categories still referenced by
// expenses cannot be deleted.
func (srv *categoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, categoryID, userID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		inUse, err := categoryRepo.HasExpenses(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to check category expenses")
		}
		if inUse {
			return domainerrors.ErrCategoryInUse.WrapMessage("expenses still reference category")
		}

		if err := categoryRepo.Delete(ctx, categoryID, userID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})

	if err != nil {
		return err
	}

	srv.logger.Debug("Category deleted", slog.Any("userID", userID), slog.Any("categoryID", categoryID))

	return nil
}
