// FILE: internal/service/preview_consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"gorlea-notes-be/internal/dto"
	"gorlea-notes-be/internal/pkg/logger"
	"gorlea-notes-be/internal/repository/specification"
	"gorlea-notes-be/internal/repository/unitofwork"
	"gorlea-notes-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// previewConsumerService derives the plain-text Preview column from document
// content off the request path, so saves never pay for HTML stripping.
type previewConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPreviewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &previewConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *previewConsumerService) Consume(ctx context.Context) error {
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

func (cs *previewConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RefreshPreviewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("preview_consumer", "failed to unmarshal preview message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		cs.logger.Error("preview_consumer", "failed to get document", map[string]interface{}{"document_id": payload.DocumentId.String(), "error": err.Error()})
		msg.Nack() // Nack for retriable errors
		return
	}
	if doc == nil {
		// Deleted before we got here; nothing to refresh.
		msg.Ack()
		return
	}

	doc.Preview = utils.Preview(doc.Content)

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		cs.logger.Error("preview_consumer", "failed to update preview", map[string]interface{}{"document_id": doc.Id.String(), "error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}
