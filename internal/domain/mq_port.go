package domain

type Message struct {
	Key   []byte
	Value []byte
}

// PublisherPort delivers events to a topic.
type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// EventPublisher emits domain events produced by imports and sync runs.
type EventPublisher interface {
	OrderImported(order *Order) error
	SyncFinished(run *SyncRun) error
}
