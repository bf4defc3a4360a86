package messagestream

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

// PublishJSON encodes payload and publishes it as a single message.
func PublishJSON(publisher message.Publisher, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}
