package service

import (
	"context"
	"encoding/json"
	"log"

	"shopsphere-admin-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the order-delivered topic and credits purchase
// points for each delivered order.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	rewardService IRewardService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	rewardService IRewardService,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		rewardService: rewardService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.OrderDeliveredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Accruing points for delivered order %s", payload.OrderID)

	if err := cs.rewardService.AccruePurchasePoints(ctx, payload.OrderID); err != nil {
		log.Printf("[ERROR] Failed to accrue points for order %s: %v", payload.OrderID, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
