package bootstrap

import (
	"context"
	"log"
	"time"

	"shopsphere-admin-be/internal/config"
	"shopsphere-admin-be/internal/controller"
	"shopsphere-admin-be/internal/pkg/logger"
	"shopsphere-admin-be/internal/pkg/mailer"
	"shopsphere-admin-be/internal/pkg/payment"
	"shopsphere-admin-be/internal/repository/memory"
	"shopsphere-admin-be/internal/repository/unitofwork"
	"shopsphere-admin-be/internal/service"
	"shopsphere-admin-be/pkg/admin/dashboard"
	adminEvents "shopsphere-admin-be/pkg/admin/events"
	"shopsphere-admin-be/pkg/admin/refund"

	pktNats "shopsphere-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	CatalogController   controller.ICatalogController
	OrderController     controller.IOrderController
	DiscountController  controller.IDiscountController
	WarehouseController controller.IWarehouseController
	ReturnController    controller.IReturnController
	RewardController    controller.IRewardController
	DeliveryController  controller.IDeliveryController
	OpsController       controller.IOpsController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	var refundGateway payment.RefundGateway
	if cfg.Payment.MidtransServerKey != "" {
		refundGateway = payment.NewMidtransGateway(cfg.Payment.MidtransServerKey, cfg.App.Environment == "production")
	} else {
		log.Printf("[WARN] No Midtrans server key configured, refunds run through the noop gateway")
		refundGateway = payment.NewNoopGateway()
	}

	tokenRepo := memory.NewTokenRepository(30 * 24 * time.Hour)

	// 3. Domain components
	eventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	refundProcessor := refund.NewProcessor(refundGateway, sysLogger)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.DeliveredTopic, pubSub)

	authService := service.NewAuthService(uowFactory, tokenRepo)
	catalogService := service.NewCatalogService(uowFactory)
	orderService := service.NewOrderService(uowFactory, publisherService, eventPublisher)
	discountService := service.NewDiscountService(uowFactory)
	warehouseService := service.NewWarehouseService(uowFactory, eventPublisher)
	rewardService := service.NewRewardService(uowFactory, rdb, sysLogger, eventPublisher)
	returnService := service.NewReturnService(uowFactory, refundProcessor, emailService, eventPublisher, sysLogger)
	deliveryService := service.NewDeliveryService(uowFactory, orderService)
	opsService := service.NewOpsService(uowFactory, sysLogger, dashboardAggregator)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.DeliveredTopic,
		rewardService,
	)

	// Audit worker mirrors published events into the operations log
	auditService := service.NewAuditService(natsSub, sysLogger)
	if natsSub != nil {
		go auditService.Start()
	}

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		CatalogController:   controller.NewCatalogController(catalogService),
		OrderController:     controller.NewOrderController(orderService),
		DiscountController:  controller.NewDiscountController(discountService),
		WarehouseController: controller.NewWarehouseController(warehouseService),
		ReturnController:    controller.NewReturnController(returnService),
		RewardController:    controller.NewRewardController(rewardService),
		DeliveryController:  controller.NewDeliveryController(deliveryService),
		OpsController:       controller.NewOpsController(opsService),

		ConsumerService: consumerService,
	}
}
