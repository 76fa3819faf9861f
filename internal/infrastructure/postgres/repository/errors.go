package repository

import (
	"errors"
	"fmt"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"gorm.io/gorm"
)

// translate maps GORM sentinel errors onto domain errors.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
