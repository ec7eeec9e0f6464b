package constants

// Order status constants
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusDelivered,
}

// Payment method constants
const (
	PaymentMethodCOD = "cod"
)

// Order status filter constants
const (
	OrderStatusFilterAll = "all"
)

// Queue constants
const (
	QueueDefault          = "default"
	TaskOrderConfirmation = "order:confirmation"
)

// Cache defaults
const (
	RedisPrefixDefault = "lumina"
)

// Cart session header
const (
	CartSessionHeader = "X-Cart-Session"
)
