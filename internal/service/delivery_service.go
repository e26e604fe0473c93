package service

import (
	"context"
	"fmt"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDeliveryService interface {
	CreateAgent(ctx context.Context, req *dto.CreateDeliveryAgentRequest) (*dto.DeliveryAgentResponse, error)
	GetAgents(ctx context.Context) ([]*dto.DeliveryAgentResponse, error)

	Assign(ctx context.Context, req *dto.AssignDeliveryRequest) (*dto.DeliveryAssignmentResponse, error)
	GetAssignment(ctx context.Context, orderID uuid.UUID) (*dto.DeliveryAssignmentResponse, error)
	GetAgentAssignments(ctx context.Context, agentID uuid.UUID) ([]*dto.DeliveryAssignmentResponse, error)
	CompleteAssignment(ctx context.Context, orderID uuid.UUID, failed bool) (*dto.DeliveryAssignmentResponse, error)
}

type deliveryService struct {
	uowFactory   unitofwork.RepositoryFactory
	orderService IOrderService
}

func NewDeliveryService(
	uowFactory unitofwork.RepositoryFactory,
	orderService IOrderService,
) IDeliveryService {
	return &deliveryService{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

func toAgentResponse(agent *entity.DeliveryAgent) dto.DeliveryAgentResponse {
	return dto.DeliveryAgentResponse{
		ID:          agent.ID,
		FullName:    agent.FullName,
		Phone:       agent.Phone,
		VehicleType: agent.VehicleType,
		IsActive:    agent.IsActive,
		CreatedAt:   agent.CreatedAt,
	}
}

func toAssignmentResponse(assignment *entity.DeliveryAssignment) dto.DeliveryAssignmentResponse {
	res := dto.DeliveryAssignmentResponse{
		ID:          assignment.ID,
		OrderID:     assignment.OrderID,
		AgentID:     assignment.AgentID,
		Status:      string(assignment.Status),
		AssignedAt:  assignment.AssignedAt,
		CompletedAt: assignment.CompletedAt,
	}
	if assignment.Agent != nil {
		res.AgentName = assignment.Agent.FullName
	}
	return res
}

func (s *deliveryService) CreateAgent(ctx context.Context, req *dto.CreateDeliveryAgentRequest) (*dto.DeliveryAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent := &entity.DeliveryAgent{
		ID:          uuid.New(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		VehicleType: req.VehicleType,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := uow.DeliveryRepository().CreateAgent(ctx, agent); err != nil {
		return nil, err
	}

	res := toAgentResponse(agent)
	return &res, nil
}

func (s *deliveryService) GetAgents(ctx context.Context) ([]*dto.DeliveryAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agents, err := uow.DeliveryRepository().FindAllAgents(ctx, specification.OrderBy{Field: "full_name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DeliveryAgentResponse, 0, len(agents))
	for _, agent := range agents {
		res := toAgentResponse(agent)
		result = append(result, &res)
	}
	return result, nil
}

func (s *deliveryService) Assign(ctx context.Context, req *dto.AssignDeliveryRequest) (*dto.DeliveryAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: req.OrderID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}
	if order.Status != entity.OrderStatusShipped {
		return nil, fmt.Errorf("%w: only shipped orders can be assigned", serverutils.ErrConflict)
	}

	agent, err := uow.DeliveryRepository().FindOneAgent(ctx, specification.ByID{ID: req.AgentID}, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.ErrNotFound
	}

	existing, err := uow.DeliveryRepository().FindAssignmentByOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: order already has a delivery assignment", serverutils.ErrConflict)
	}

	assignment := &entity.DeliveryAssignment{
		ID:         uuid.New(),
		OrderID:    req.OrderID,
		AgentID:    req.AgentID,
		Status:     entity.AssignmentStatusAssigned,
		AssignedAt: time.Now(),
		Agent:      agent,
	}

	if err := uow.DeliveryRepository().CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	res := toAssignmentResponse(assignment)
	return &res, nil
}

func (s *deliveryService) GetAssignment(ctx context.Context, orderID uuid.UUID) (*dto.DeliveryAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.DeliveryRepository().FindAssignmentByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toAssignmentResponse(assignment)
	return &res, nil
}

func (s *deliveryService) GetAgentAssignments(ctx context.Context, agentID uuid.UUID) ([]*dto.DeliveryAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.DeliveryRepository().FindOneAgent(ctx, specification.ByID{ID: agentID})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, serverutils.ErrNotFound
	}

	assignments, err := uow.DeliveryRepository().FindOpenAssignmentsByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DeliveryAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		res := toAssignmentResponse(assignment)
		result = append(result, &res)
	}
	return result, nil
}

// CompleteAssignment closes an open assignment. Successful delivery also
// advances the order to DELIVERED, which queues points accrual.
func (s *deliveryService) CompleteAssignment(ctx context.Context, orderID uuid.UUID, failed bool) (*dto.DeliveryAssignmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	assignment, err := uow.DeliveryRepository().FindAssignmentByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, serverutils.ErrNotFound
	}
	if assignment.Status != entity.AssignmentStatusAssigned {
		return nil, fmt.Errorf("%w: assignment is already closed", serverutils.ErrConflict)
	}

	now := time.Now()
	assignment.CompletedAt = &now
	if failed {
		assignment.Status = entity.AssignmentStatusFailed
	} else {
		assignment.Status = entity.AssignmentStatusDelivered
	}

	if err := uow.DeliveryRepository().UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if !failed {
		if _, err := s.orderService.UpdateStatus(ctx, orderID, &dto.UpdateOrderStatusRequest{
			Status: string(entity.OrderStatusDelivered),
		}); err != nil {
			return nil, err
		}
	}

	res := toAssignmentResponse(assignment)
	return &res, nil
}
