package repository

import (
	"errors"
	"fmt"

	"terranova_lotes/internal/usecase/interfaces"

	"modernc.org/sqlite"
)

// SQLite extended result codes for the constraint failures the usecases
// re-classify.
const (
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintForeignKey = 787
)

// translateSQLiteError folds driver constraint failures into the repository
// sentinels; everything else passes through untouched.
func translateSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", interfaces.ErrDuplicateKey, err)
		case sqliteConstraintForeignKey:
			return fmt.Errorf("%w: %v", interfaces.ErrForeignKeyViolation, err)
		}
	}
	return err
}
