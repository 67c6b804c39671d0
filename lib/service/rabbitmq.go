package service

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/acmehq/invoicehub/common"
	"github.com/acmehq/invoicehub/db/models"
	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

var bufPool sync.Pool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// StartRabbitMqPublisher pushes invoice mutation events to a topic exchange.
// The event kind is the routing key.
func (svc *InvoicehubService) StartRabbitMqPublisher(ctx context.Context) error {
	// It is recommended that, when possible, publishers and consumers
	// use separate connections. We only publish, so a single dedicated
	// connection is started here instead of storing one on the service
	// object.
	var conn *amqp.Connection
	err := backoff.Retry(func() error {
		var err error
		conn, err = amqp.Dial(svc.Config.RabbitMQUri)
		if err != nil {
			svc.Logger.Errorf("Error connecting to rabbitmq: %v", err)
		}
		return err
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		svc.Config.RabbitMQInvoiceExchange,
		// topic exchanges route messages to queues based on a routing key
		"topic",
		// durable and non-auto-deleted exchanges survive server restarts
		true,
		false,
		false,
		// we wait for a server response to check the exchange was created
		false,
		nil,
	)
	if err != nil {
		return err
	}

	svc.Logger.Infof("Starting rabbitmq publisher")

	topicChans := make(map[string]chan models.Invoice, len(common.InvoiceEvents))
	for _, topic := range common.InvoiceEvents {
		topicChan := make(chan models.Invoice)
		svc.InvoicePubSub.Subscribe(topic, topicChan)
		topicChans[topic] = topicChan
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case invoice := <-topicChans[common.InvoiceEventCreated]:
			svc.publishToRabbitMq(ctx, ch, common.InvoiceEventCreated, invoice)
		case invoice := <-topicChans[common.InvoiceEventUpdated]:
			svc.publishToRabbitMq(ctx, ch, common.InvoiceEventUpdated, invoice)
		case invoice := <-topicChans[common.InvoiceEventDeleted]:
			svc.publishToRabbitMq(ctx, ch, common.InvoiceEventDeleted, invoice)
		}
	}
}

func (svc *InvoicehubService) publishToRabbitMq(ctx context.Context, ch *amqp.Channel, routingKey string, invoice models.Invoice) {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := json.NewEncoder(payload).Encode(&invoice)
	if err != nil {
		svc.Logger.Errorf("Error encoding invoice %s: %v", invoice.ID, err)
		return
	}

	err = ch.PublishWithContext(ctx,
		svc.Config.RabbitMQInvoiceExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		svc.Logger.Errorf("Error publishing invoice %s: %v", invoice.ID, err)
	}
}
