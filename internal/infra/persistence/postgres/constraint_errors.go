package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helpers for constraint violations translated by the GORM dialector

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isInvalidDataViolation reports whether the store rejected the row itself rather than failing.
func isInvalidDataViolation(err error) bool {
	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err)
}
