package helpers

// IngestAcceptedResponse acknowledges an enqueued auction-closed message.
type IngestAcceptedResponse struct {
	DeliveryID string `json:"delivery_id"`
}
