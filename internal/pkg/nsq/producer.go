package nsq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// DeferredPublish sends a message to the specified topic after the
// given delay. nsqd holds the message in its deferred queue, which is
// what drives the offer-timeout trigger without any in-process timer.
func (p *Producer) DeferredPublish(topic string, delay time.Duration, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.DeferredPublish(topic, delay, msgBytes); err != nil {
		return fmt.Errorf("failed to publish deferred message: %w", err)
	}

	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
