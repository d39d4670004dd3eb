package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/segmentio/kafka-go"
)

// FeeDueReader читает события о наступлении годовой платы
type FeeDueReader struct {
	reader *kafka.Reader
}

func NewFeeDueReader(cfg config.KafkaConfig) (*FeeDueReader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kafkaconfig := kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	}
	return &FeeDueReader{kafka.NewReader(kafkaconfig)}, nil
}

// offset фиксируется отдельно, после расчета
func (k *FeeDueReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return k.reader.FetchMessage(ctx)
}

func (k *FeeDueReader) Commit(ctx context.Context, msg kafka.Message) error {
	return k.reader.CommitMessages(ctx, msg)
}

func (k *FeeDueReader) Close() error {
	return k.reader.Close()
}

// {"cardId": ..., "feeYear": ...}
func ParseFeeDueEvent(value []byte) (models.FeeDueEvent, error) {
	var event models.FeeDueEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return models.FeeDueEvent{}, fmt.Errorf("%w: fee due event: %v", models.ErrInvalidInput, err)
	}
	if event.CardID == "" {
		return models.FeeDueEvent{}, fmt.Errorf("%w: fee due event without cardId", models.ErrInvalidInput)
	}
	if event.FeeYear < 1 {
		return models.FeeDueEvent{}, fmt.Errorf("%w: fee due event with feeYear %d", models.ErrInvalidInput, event.FeeYear)
	}
	return event, nil
}
