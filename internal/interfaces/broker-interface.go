package interfaces

// ProducerHandler is what the audit recorder needs from the message broker.
// A nil-safe implementation may skip publishing when the broker is not
// configured.
type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
