package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
)

// PartyRef identifies the party a payment plan belongs to
type PartyRef struct {
	Type ledger.PartyType
	ID   uuid.UUID
	Name string
}

// PartyDirectory resolves debt entity names to ledger parties.
// Lookup order is companies first, then customers; unknown names
// become new companies. The planner never touches storage itself,
// it goes through this capability.
type PartyDirectory interface {
	FindOrCreate(ctx context.Context, name string) (PartyRef, error)
}
