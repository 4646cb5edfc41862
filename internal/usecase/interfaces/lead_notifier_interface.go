package interfaces

import (
	"context"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

// ILeadNotifier tells the sales team about a freshly stored lead (e.g. by e-mail).
type ILeadNotifier interface {
	NotifyNewLead(ctx context.Context, l entities.Lead) error
}
