package interfaces

import (
	"context"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

// ILeadRepository abstracts persistence for Lead.
//
// Implementations return a zero Lead (empty ID) and a nil error when no record matches.
// List returns leads in insertion order.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}
