package queue

import (
	"encoding/json"

	"github.com/lumina-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation notifies the customer after checkout.
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// OrderConfirmationPayload is the order confirmation task payload.
type OrderConfirmationPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
}

// NewOrderConfirmationTask builds an order confirmation task.
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
