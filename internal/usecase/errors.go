package usecase

import (
	"errors"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

func isDuplicate(err error) bool {
	return errors.Is(err, domain.ErrDuplicate)
}
