package implementation

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deliveryRepositoryImpl struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) contract.DeliveryRepository {
	return &deliveryRepositoryImpl{db: db}
}

func (r *deliveryRepositoryImpl) CreateAgent(ctx context.Context, agent *entity.DeliveryAgent) error {
	return r.db.WithContext(ctx).Create(&model.DeliveryAgent{
		ID:          agent.ID,
		FullName:    agent.FullName,
		Phone:       agent.Phone,
		VehicleType: agent.VehicleType,
		IsActive:    agent.IsActive,
	}).Error
}

func (r *deliveryRepositoryImpl) FindOneAgent(ctx context.Context, specs ...specification.Specification) (*entity.DeliveryAgent, error) {
	var ma model.DeliveryAgent
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&ma).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.agentToEntity(&ma), nil
}

func (r *deliveryRepositoryImpl) FindAllAgents(ctx context.Context, specs ...specification.Specification) ([]*entity.DeliveryAgent, error) {
	var models []*model.DeliveryAgent
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var agents []*entity.DeliveryAgent
	for _, ma := range models {
		agents = append(agents, r.agentToEntity(ma))
	}
	return agents, nil
}

func (r *deliveryRepositoryImpl) UpdateAgent(ctx context.Context, agent *entity.DeliveryAgent) error {
	return r.db.WithContext(ctx).Model(&model.DeliveryAgent{}).
		Where("id = ?", agent.ID).
		Updates(map[string]interface{}{
			"full_name":    agent.FullName,
			"phone":        agent.Phone,
			"vehicle_type": agent.VehicleType,
			"is_active":    agent.IsActive,
		}).Error
}

func (r *deliveryRepositoryImpl) CreateAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error {
	return r.db.WithContext(ctx).Create(&model.DeliveryAssignment{
		ID:         assignment.ID,
		OrderID:    assignment.OrderID,
		AgentID:    assignment.AgentID,
		Status:     string(assignment.Status),
		AssignedAt: assignment.AssignedAt,
	}).Error
}

func (r *deliveryRepositoryImpl) FindAssignmentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryAssignment, error) {
	var ma model.DeliveryAssignment
	err := r.db.WithContext(ctx).
		Preload("Agent").
		Where("order_id = ?", orderID).
		First(&ma).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.assignmentToEntity(&ma), nil
}

func (r *deliveryRepositoryImpl) FindOpenAssignmentsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.DeliveryAssignment, error) {
	var models []*model.DeliveryAssignment
	err := r.db.WithContext(ctx).
		Preload("Agent").
		Where("agent_id = ? AND status = ?", agentID, string(entity.AssignmentStatusAssigned)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	var assignments []*entity.DeliveryAssignment
	for _, ma := range models {
		assignments = append(assignments, r.assignmentToEntity(ma))
	}
	return assignments, nil
}

func (r *deliveryRepositoryImpl) UpdateAssignment(ctx context.Context, assignment *entity.DeliveryAssignment) error {
	return r.db.WithContext(ctx).Model(&model.DeliveryAssignment{}).
		Where("id = ?", assignment.ID).
		Updates(map[string]interface{}{
			"status":       string(assignment.Status),
			"completed_at": assignment.CompletedAt,
		}).Error
}

func (r *deliveryRepositoryImpl) agentToEntity(ma *model.DeliveryAgent) *entity.DeliveryAgent {
	return &entity.DeliveryAgent{
		ID:          ma.ID,
		FullName:    ma.FullName,
		Phone:       ma.Phone,
		VehicleType: ma.VehicleType,
		IsActive:    ma.IsActive,
		CreatedAt:   ma.CreatedAt,
		UpdatedAt:   ma.UpdatedAt,
	}
}

func (r *deliveryRepositoryImpl) assignmentToEntity(ma *model.DeliveryAssignment) *entity.DeliveryAssignment {
	assignment := &entity.DeliveryAssignment{
		ID:          ma.ID,
		OrderID:     ma.OrderID,
		AgentID:     ma.AgentID,
		Status:      entity.AssignmentStatus(ma.Status),
		AssignedAt:  ma.AssignedAt,
		CompletedAt: ma.CompletedAt,
	}
	if ma.Agent.ID != uuid.Nil {
		assignment.Agent = r.agentToEntity(&ma.Agent)
	}
	return assignment
}
