package bolireg

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/bolihq/bolireg/schema"
)

const (
	EventTopic      = "bolireg_asset_event"
	ComplianceTopic = "bolireg_compliance"
)

type KWriter struct {
	w *kafka.Writer
}

func NewKWriter(topic string, uri string) (*KWriter, error) {
	w := &kafka.Writer{
		Addr:     kafka.TCP(uri),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &KWriter{
		w: w,
	}, nil
}

func (kw *KWriter) Write(key, body []byte) error {
	err := kw.w.WriteMessages(
		context.Background(),
		kafka.Message{
			Key:   key,
			Value: body,
		},
	)
	return err
}

func (kw *KWriter) Close() {
	kw.w.Close()
}

func NewKWriters(uri string) (map[string]*KWriter, error) {
	eventWriter, err := NewKWriter(EventTopic, uri)
	if err != nil {
		return nil, err
	}
	complianceWriter, err := NewKWriter(ComplianceTopic, uri)
	if err != nil {
		return nil, err
	}
	return map[string]*KWriter{
		EventTopic:      eventWriter,
		ComplianceTopic: complianceWriter,
	}, nil
}

// publishEvent fans an audit event out to kafka, keyed by asset id so one
// asset's history stays ordered within a partition.
func (s *Bolireg) publishEvent(event schema.AssetEvent) {
	topic := EventTopic
	if event.Kind == schema.EventComplianceUpdated {
		topic = ComplianceTopic
	}
	kw, ok := s.kafka[topic]
	if !ok {
		return
	}
	by, err := json.Marshal(&event)
	if err != nil {
		log.Error("marshal kafka event", "eventId", event.EventId, "err", err)
		return
	}
	if err := kw.Write([]byte(event.AssetId), by); err != nil {
		log.Error("publish kafka event", "topic", topic, "eventId", event.EventId, "err", err)
	}
}
