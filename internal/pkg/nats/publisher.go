package nats

// Publisher is the publishing surface use cases depend on, satisfied by
// *Client and by test doubles.
type Publisher interface {
	Publish(subject string, data []byte) error
	PublishEvent(subject string, event interface{}) error
}
