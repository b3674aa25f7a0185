package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

const (
	CirculationTopic = "circulation"
)

type EventKind string

const (
	EventBorrowed EventKind = "BORROWED"
	EventReturned EventKind = "RETURNED"
)

// EventStats is the message published to CirculationTopic after a committed transition.
type EventStats struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	RecordID   int64     `json:"recordId"`
	BookCopyID int64     `json:"bookCopyId"`
	PersonID   int64     `json:"personId"`
	UserID     int64     `json:"userId"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
