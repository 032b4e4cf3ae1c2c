package constants

// NSQ topics
const (
	// TopicTransactionEvents carries transaction lifecycle events
	// (created, updated, deleted).
	TopicTransactionEvents = "transaction_events"
)
