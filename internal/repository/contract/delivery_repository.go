package contract

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeliveryRepository interface {
	CreateAgent(ctx context.Context, agent *entity.DeliveryAgent) error
	FindOneAgent(ctx context.Context, specs ...specification.Specification) (*entity.DeliveryAgent, error)
	FindAllAgents(ctx context.Context, specs ...specification.Specification) ([]*entity.DeliveryAgent, error)
	UpdateAgent(ctx context.Context, agent *entity.DeliveryAgent) error

	CreateAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error
	FindAssignmentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryAssignment, error)
	// FindOpenAssignmentsByAgent lists an agent's not-yet-completed assignments.
	FindOpenAssignmentsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.DeliveryAssignment, error)
	UpdateAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error
}
