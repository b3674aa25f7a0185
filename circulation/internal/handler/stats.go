package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

type StatsLog interface {
	Log(ev kafka.EventStats) error
}

type statsLog struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewStatsLog publishes circulation events; the breaker stops a dead broker from slowing
// every borrow and return.
func NewStatsLog(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) *statsLog {
	return &statsLog{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (l *statsLog) Log(ev kafka.EventStats) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		// keyed by copy so events of one copy stay ordered within a partition
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.BookCopyID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return l.cb.Call(func() error {
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}

type NopStatsLog struct{}

func (NopStatsLog) Log(kafka.EventStats) error { return nil }

func newEvent(kind kafka.EventKind, rec model.BorrowRecord, userID int64) kafka.EventStats {
	ts := rec.BorrowDate
	if rec.ReturnDate != nil {
		ts = *rec.ReturnDate
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return kafka.EventStats{
		ID:         uuid.NewString(),
		Kind:       kind,
		RecordID:   rec.ID,
		BookCopyID: rec.BookCopyID,
		PersonID:   rec.PersonID,
		UserID:     userID,
		Timestamp:  ts,
	}
}
