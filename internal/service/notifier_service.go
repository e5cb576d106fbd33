// FILE: internal/service/notifier_service.go
// In-process bridge between domain operations and the websocket hub.
// Services publish notices onto a watermill channel; the consumer side
// fans them out to connected console sessions. Decoupling the two keeps
// request handling free of socket write latency.
package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-character-admin-be/internal/pkg/logger"
	internalWS "ai-character-admin-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type INotifierService interface {
	Notify(notice internalWS.Notice)
	Start(ctx context.Context) error
}

type notifierService struct {
	pubSub *gochannel.GoChannel
	topic  string
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotifierService(pubSub *gochannel.GoChannel, topic string, hub *internalWS.Hub, log logger.ILogger) INotifierService {
	return &notifierService{
		pubSub: pubSub,
		topic:  topic,
		hub:    hub,
		logger: log,
	}
}

// Notify queues a notice for broadcast. Never blocks the caller.
func (s *notifierService) Notify(notice internalWS.Notice) {
	payload, err := json.Marshal(notice)
	if err != nil {
		s.logger.Error("Notifier", "Failed to marshal notice", map[string]interface{}{"error": err.Error()})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topic, msg); err != nil {
		s.logger.Error("Notifier", "Failed to publish notice", map[string]interface{}{"error": err.Error()})
	}
}

// Start consumes the notice topic and relays to the hub.
func (s *notifierService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var notice internalWS.Notice
			if err := json.Unmarshal(msg.Payload, &notice); err != nil {
				log.Printf("[ERROR] Failed to unmarshal notice: %v", err)
				msg.Ack()
				continue
			}
			if s.hub != nil {
				s.hub.Broadcast(notice)
			}
			msg.Ack()
		}
	}()

	return nil
}
