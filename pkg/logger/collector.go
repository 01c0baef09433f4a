package logger

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Publisher ships aggregated log batches to an external sink (Kafka in production).
type Publisher interface {
	PublishMessage(ctx context.Context, topic string, payload interface{}) error
}

type CollectionConfig struct {
	TimeInterval   time.Duration // flush interval
	CountThreshold int           // max unique entries before an early flush
	Topic          string
	Publisher      Publisher
}

type AggregatedLogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector deduplicates warn/error entries and periodically publishes them.
type LogCollector struct {
	config *CollectionConfig
	logMap map[string]*AggregatedLogEntry
	mutex  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	if config.TimeInterval <= 0 {
		config.TimeInterval = 30 * time.Second
	}
	if config.CountThreshold <= 0 {
		config.CountThreshold = 100
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &LogCollector{
		config: config,
		logMap: make(map[string]*AggregatedLogEntry),
		ctx:    ctx,
		cancel: cancel,
	}

	c.wg.Add(1)
	go c.periodicFlush()

	return c
}

func (d *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := d.generateKey(level, message, fields, caller)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if entry, exists := d.logMap[key]; exists {
		entry.Count++
		entry.LastSeen = now
	} else {
		d.logMap[key] = &AggregatedLogEntry{
			Level:     level,
			Message:   message,
			Fields:    fields,
			Caller:    caller,
			Count:     1,
			FirstSeen: now,
			LastSeen:  now,
		}
	}

	if len(d.logMap) >= d.config.CountThreshold {
		d.publish(d.drain())
	}
}

// Pending returns the number of unique entries waiting for the next flush.
func (d *LogCollector) Pending() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return len(d.logMap)
}

func (d *LogCollector) generateKey(level, message string, fields map[string]interface{}, caller string) string {
	data := struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
		Caller  string                 `json:"caller"`
	}{level, message, fields, caller}

	jsonData, _ := json.Marshal(data)
	return fmt.Sprintf("%x", sha256.Sum256(jsonData))
}

func (d *LogCollector) periodicFlush() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.TimeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.mutex.Lock()
			logs := d.drain()
			d.mutex.Unlock()
			d.publish(logs)
		case <-d.ctx.Done():
			d.mutex.Lock()
			logs := d.drain()
			d.mutex.Unlock()
			d.send(logs)
			return
		}
	}
}

// drain must be called with the mutex held.
func (d *LogCollector) drain() []AggregatedLogEntry {
	if len(d.logMap) == 0 {
		return nil
	}
	logs := make([]AggregatedLogEntry, 0, len(d.logMap))
	for _, entry := range d.logMap {
		logs = append(logs, *entry)
	}
	d.logMap = make(map[string]*AggregatedLogEntry)
	return logs
}

func (d *LogCollector) publish(logs []AggregatedLogEntry) {
	if len(logs) == 0 {
		return
	}
	go d.send(logs)
}

func (d *LogCollector) send(logs []AggregatedLogEntry) {
	if len(logs) == 0 || d.config.Publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := d.config.Publisher.PublishMessage(ctx, d.config.Topic, logs); err != nil {
		fmt.Fprintf(os.Stderr, "failed to send aggregated logs: %v\n", err)
	}
}

// Close stops the flush loop and publishes whatever is still buffered.
func (d *LogCollector) Close() {
	d.cancel()
	d.wg.Wait()
}
