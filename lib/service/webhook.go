package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/acmehq/invoicehub/common"
	"github.com/acmehq/invoicehub/db/models"
)

type webhookPayload struct {
	Event   string         `json:"event"`
	Invoice models.Invoice `json:"invoice"`
}

// StartWebhookSubscription posts every invoice mutation to the configured
// webhook url until the context is cancelled.
func (svc *InvoicehubService) StartWebhookSubscription(ctx context.Context, url string) {

	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)

	created := make(chan models.Invoice)
	updated := make(chan models.Invoice)
	deleted := make(chan models.Invoice)
	svc.InvoicePubSub.Subscribe(common.InvoiceEventCreated, created)
	svc.InvoicePubSub.Subscribe(common.InvoiceEventUpdated, updated)
	svc.InvoicePubSub.Subscribe(common.InvoiceEventDeleted, deleted)

	for {
		select {
		case <-ctx.Done():
			return
		case invoice := <-created:
			svc.postToWebhook(url, common.InvoiceEventCreated, invoice)
		case invoice := <-updated:
			svc.postToWebhook(url, common.InvoiceEventUpdated, invoice)
		case invoice := <-deleted:
			svc.postToWebhook(url, common.InvoiceEventDeleted, invoice)
		}
	}
}

func (svc *InvoicehubService) postToWebhook(url string, event string, invoice models.Invoice) {

	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(webhookPayload{Event: event, Invoice: invoice})
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	resp, err := http.Post(url, "application/json", payload)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error(err)
		}
		svc.Logger.Errorf("Webhook status code was %d, body: %s", resp.StatusCode, msg)
	}
}
