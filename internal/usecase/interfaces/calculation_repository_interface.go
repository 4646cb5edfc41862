package interfaces

import (
	"context"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

// ICalculationRepository abstracts persistence for Calculation.

type ICalculationRepository interface {
	Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error)
	GetByID(ctx context.Context, id string) (entities.Calculation, error)
}
