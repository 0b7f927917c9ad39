package get_day_board

import (
	"fmt"

	"github.com/m04kA/FitStudio-SessionService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Role != domain.RoleTrainer && req.Role != domain.RoleMember {
		return fmt.Errorf("%w: unknown caller role %q", ErrInvalidInput, req.Role)
	}

	return nil
}
