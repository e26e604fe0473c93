package service

import (
	"context"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// stubUow satisfies unitofwork.UnitOfWork with whatever repositories a test
// wires in. Accessors for repositories a test does not configure return nil,
// so an unexpected call fails loudly.
type stubUow struct {
	beginErr   error
	began      bool
	committed  bool
	rolledBack bool

	orders     contract.OrderRepository
	discounts  contract.DiscountRepository
	warehouses contract.WarehouseRepository
	stock      contract.StockRepository
	returns    contract.ReturnRepository
	rewards    contract.RewardRepository
	ledger     contract.PointsLedgerRepository
}

func (u *stubUow) Begin(ctx context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.began = true
	return nil
}

func (u *stubUow) Commit() error {
	u.committed = true
	return nil
}

func (u *stubUow) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *stubUow) UserRepository() contract.UserRepository { return nil }
func (u *stubUow) ProductRepository() contract.ProductRepository { return nil }
func (u *stubUow) CategoryRepository() contract.CategoryRepository { return nil }
func (u *stubUow) OrderRepository() contract.OrderRepository { return u.orders }
func (u *stubUow) DiscountRepository() contract.DiscountRepository { return u.discounts }
func (u *stubUow) WarehouseRepository() contract.WarehouseRepository { return u.warehouses }
func (u *stubUow) StockRepository() contract.StockRepository { return u.stock }
func (u *stubUow) ReturnRepository() contract.ReturnRepository { return u.returns }
func (u *stubUow) RewardRepository() contract.RewardRepository { return u.rewards }
func (u *stubUow) PointsLedgerRepository() contract.PointsLedgerRepository {
	return u.ledger
}
func (u *stubUow) DeliveryRepository() contract.DeliveryRepository { return nil }

type stubFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// Repository stubs embed the contract interface so only the methods a test
// exercises need an implementation.

type stubOrderRepo struct {
	contract.OrderRepository
	findOne      func(ctx context.Context) (*entity.Order, error)
	updateStatus func(ctx context.Context, order *entity.Order) error
}

func (r *stubOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	return r.findOne(ctx)
}

func (r *stubOrderRepo) FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	return r.findOne(ctx)
}

func (r *stubOrderRepo) UpdateStatus(ctx context.Context, order *entity.Order) error {
	if r.updateStatus != nil {
		return r.updateStatus(ctx, order)
	}
	return nil
}

type stubDiscountRepo struct {
	contract.DiscountRepository
	findByCode     func(ctx context.Context, code string) (*entity.Discount, error)
	incrementedIDs []uuid.UUID
}

func (r *stubDiscountRepo) FindByCode(ctx context.Context, code string) (*entity.Discount, error) {
	return r.findByCode(ctx, code)
}

func (r *stubDiscountRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	r.incrementedIDs = append(r.incrementedIDs, id)
	return nil
}

type stubReturnRepo struct {
	contract.ReturnRepository
	findOne          func(ctx context.Context) (*entity.ReturnRequest, error)
	count            func(ctx context.Context) (int64, error)
	created          []*entity.ReturnRequest
	decisionsUpdated []*entity.ReturnRequest
	appealsUpdated   []*entity.ReturnAppeal
}

func (r *stubReturnRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReturnRequest, error) {
	return r.findOne(ctx)
}

func (r *stubReturnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx)
}

func (r *stubReturnRepo) Create(ctx context.Context, req *entity.ReturnRequest) error {
	r.created = append(r.created, req)
	return nil
}

func (r *stubReturnRepo) UpdateDecision(ctx context.Context, req *entity.ReturnRequest) error {
	r.decisionsUpdated = append(r.decisionsUpdated, req)
	return nil
}

func (r *stubReturnRepo) CreateAppeal(ctx context.Context, appeal *entity.ReturnAppeal) error {
	return nil
}

func (r *stubReturnRepo) UpdateAppealDecision(ctx context.Context, appeal *entity.ReturnAppeal) error {
	r.appealsUpdated = append(r.appealsUpdated, appeal)
	return nil
}

type stubRewardRepo struct {
	contract.RewardRepository
	activeConfig func(ctx context.Context) (*entity.RewardSystemConfig, error)
	saved        []*entity.RewardSystemConfig
	activatedIDs []uuid.UUID
}

func (r *stubRewardRepo) FindActiveConfig(ctx context.Context) (*entity.RewardSystemConfig, error) {
	return r.activeConfig(ctx)
}

func (r *stubRewardRepo) SaveConfig(ctx context.Context, cfg *entity.RewardSystemConfig) error {
	r.saved = append(r.saved, cfg)
	return nil
}

func (r *stubRewardRepo) Activate(ctx context.Context, id uuid.UUID) error {
	r.activatedIDs = append(r.activatedIDs, id)
	return nil
}

type stubLedgerRepo struct {
	contract.PointsLedgerRepository
	balance        func(ctx context.Context, customerID uuid.UUID) (int, error)
	existsForOrder func(ctx context.Context, orderID uuid.UUID) (bool, error)
	created        []*entity.PointsLedgerEntry
}

func (r *stubLedgerRepo) BalanceByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	return r.balance(ctx, customerID)
}

func (r *stubLedgerRepo) ExistsForOrder(ctx context.Context, orderID uuid.UUID, txType entity.PointsTransactionType) (bool, error) {
	return r.existsForOrder(ctx, orderID)
}

func (r *stubLedgerRepo) Create(ctx context.Context, entry *entity.PointsLedgerEntry) error {
	r.created = append(r.created, entry)
	return nil
}

type stubWarehouseRepo struct {
	contract.WarehouseRepository
	findOne func(ctx context.Context) (*entity.Warehouse, error)
	updated []*entity.Warehouse
	deleted []uuid.UUID
}

func (r *stubWarehouseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Warehouse, error) {
	return r.findOne(ctx)
}

func (r *stubWarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	r.updated = append(r.updated, warehouse)
	return nil
}

func (r *stubWarehouseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubStockRepo struct {
	contract.StockRepository
	levels   map[uuid.UUID]*entity.StockLevel
	upserted []*entity.StockLevel
}

func (r *stubStockRepo) FindLevel(ctx context.Context, warehouseID, productID uuid.UUID) (*entity.StockLevel, error) {
	return r.levels[warehouseID], nil
}

func (r *stubStockRepo) FindLevelsWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.StockLevel, error) {
	result := make([]*entity.StockLevel, 0, len(r.levels))
	for _, level := range r.levels {
		result = append(result, level)
	}
	return result, nil
}

func (r *stubStockRepo) Upsert(ctx context.Context, level *entity.StockLevel) error {
	r.upserted = append(r.upserted, level)
	return nil
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{}) {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// recordingEventPublisher captures domain events for assertions.
type recordingEventPublisher struct {
	orderStatusChanges []string
	returnsDecided     []float64
	appealsDecided     []string
	pointsAccrued      []int
	configsActivated   []uuid.UUID
	stockLowAlerts     int
}

func (p *recordingEventPublisher) PublishOrderStatusChanged(ctx context.Context, orderId uuid.UUID, orderNumber, oldStatus, newStatus string) {
	p.orderStatusChanges = append(p.orderStatusChanges, oldStatus+"->"+newStatus)
}

func (p *recordingEventPublisher) PublishReturnDecided(ctx context.Context, returnId, orderId uuid.UUID, status, notes string, refundAmount float64) {
	p.returnsDecided = append(p.returnsDecided, refundAmount)
}

func (p *recordingEventPublisher) PublishAppealDecided(ctx context.Context, appealId, returnId uuid.UUID, status, notes string) {
	p.appealsDecided = append(p.appealsDecided, status)
}

func (p *recordingEventPublisher) PublishPointsAccrued(ctx context.Context, customerId, orderId uuid.UUID, points int, txType string) {
	p.pointsAccrued = append(p.pointsAccrued, points)
}

func (p *recordingEventPublisher) PublishRewardConfigActivated(ctx context.Context, configId uuid.UUID) {
	p.configsActivated = append(p.configsActivated, configId)
}

func (p *recordingEventPublisher) PublishStockLow(ctx context.Context, warehouseId, productId uuid.UUID, quantity, reorderAt int) {
	p.stockLowAlerts++
}

// recordingPublisher captures payloads queued for the delivery consumer.
type recordingPublisher struct {
	published [][]byte
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

// recordingMailer captures outbound notification emails.
type recordingMailer struct {
	decisions     []string
	appeals       []string
	confirmations []float64
}

func (m *recordingMailer) SendReturnDecision(toEmail, returnID, status, notes string) error {
	m.decisions = append(m.decisions, status)
	return nil
}

func (m *recordingMailer) SendAppealDecision(toEmail, returnID, status, notes string) error {
	m.appeals = append(m.appeals, status)
	return nil
}

func (m *recordingMailer) SendRefundConfirmation(toEmail, returnID string, amount float64) error {
	m.confirmations = append(m.confirmations, amount)
	return nil
}

// stubGateway fakes the payment provider's refund endpoint.
type stubGateway struct {
	err     error
	refunds []float64
}

func (g *stubGateway) Refund(orderRef string, amount float64, reason string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.refunds = append(g.refunds, amount)
	return "refund-key-test", nil
}
