// Package kafkaconsumer ingests geometry documents from a Kafka topic,
// importing each through the core and warming the summary cache.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/spatialkit/planar/internal/core/model"
	obs "github.com/spatialkit/planar/internal/core/observability"
)

// Document is one ingested message: a geometry payload and the format
// it is encoded in. Payload is a JSON string for wkt and a JSON object
// for esrijson.
type Document struct {
	Format  string          `json:"format"`
	Payload json.RawMessage `json:"payload"`
}

// Importer is satisfied by the core service.
type Importer interface {
	Import(ctx context.Context, req model.ImportRequest) (model.Summary, bool, error)
}

type Consumer struct {
	cfg    Config
	logger *slog.Logger
	svc    Importer

	mu         sync.Mutex
	partitions []int32
	ready      bool
}

func New(cfg Config, logger *slog.Logger, svc Importer) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg, logger: logger, svc: svc}
}

// Start consumes documents until ctx is canceled.
func (c *Consumer) Start(ctx context.Context) error {
	if c.svc == nil {
		return errors.New("kafkaconsumer: missing importer")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	if c.cfg.InitialOffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	cfg.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.cfg.GroupID, cfg)
	if err != nil {
		return errors.Join(errors.New("create consumer group"), err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{
		process:   c.ProcessOne,
		onSetup:   c.setReady,
		onCleanup: c.setNotReady,
	}

	c.logger.Info("geometry ingest consumer starting",
		"brokers", c.cfg.Brokers, "topic", c.cfg.Topic, "group", c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("geometry ingest consumer shutting down")
			return nil
		default:
			if err := group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil {
				c.logger.Error("consumer error", "err", err)
				time.Sleep(2 * time.Second)
			}
		}
	}
}

// ProcessOne imports a single document. Malformed messages are counted
// and skipped rather than returned as errors: failing the claim would
// redeliver a document that can never parse.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var doc Document
	if err := json.Unmarshal(msg.Value, &doc); err != nil {
		obs.IncIngest("decode")
		c.logger.Warn("undecodable ingest message",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)
		return nil
	}

	data := doc.Payload
	if doc.Format == model.FormatWKT {
		var s string
		if err := json.Unmarshal(doc.Payload, &s); err != nil {
			obs.IncIngest("decode")
			c.logger.Warn("wkt payload is not a json string",
				"topic", msg.Topic, "offset", msg.Offset, "err", err)
			return nil
		}
		data = []byte(s)
	}

	sum, cached, err := c.svc.Import(ctx, model.ImportRequest{Format: doc.Format, Data: data})
	if err != nil {
		obs.IncIngest("reject")
		c.logger.Warn("rejected ingest document",
			"topic", msg.Topic, "offset", msg.Offset, "format", doc.Format, "err", err)
		return nil
	}

	obs.IncIngest("ok")
	c.logger.Debug("ingested geometry",
		"type", sum.Type, "cached", cached, "offset", msg.Offset)
	return nil
}

func (c *Consumer) setReady(claims map[string][]int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.partitions = c.partitions[:0]
	for _, parts := range claims {
		c.partitions = append(c.partitions, parts...)
	}
	c.ready = true
}

func (c *Consumer) setNotReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = false
}

// Readiness reports whether a consumer group session is active and
// which partitions this instance holds.
func (c *Consumer) Readiness() (bool, []int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	parts := make([]int32, len(c.partitions))
	copy(parts, c.partitions)
	return c.ready, parts
}
