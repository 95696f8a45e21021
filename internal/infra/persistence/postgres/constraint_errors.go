package postgres

import (
	"gorm.io/gorm"

	"tally/internal/errors"
)

// Constraint checks rely on gorm's TranslateError mode, which maps the
// underlying postgres error codes onto gorm sentinels.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
