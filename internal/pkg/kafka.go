package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Notification 排班动作完成后对外发出的信号，下游（邮件推送、日历同步等）自行消费
type Notification struct {
	Type    string `json:"type"` // event_saved / event_deleted / member_added / member_linked
	GroupID uint64 `json:"group_id"`
	Subject string `json:"subject"`
	Date    string `json:"date,omitempty"`
	At      int64  `json:"at"`
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Notify 按乐队ID分区发通知；producer 未配置时静默跳过
func (p *KafkaProducer) Notify(ctx context.Context, n Notification) error {
	if p == nil || p.writer == nil {
		return nil
	}
	n.At = time.Now().Unix()
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.Send(ctx, MakeKeyFromID(n.GroupID), raw)
}

func MakeKeyFromID(id uint64) string {
	return fmt.Sprintf("%d", id)
}
