package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Collection is a typed view over one named collection in a DocumentStore,
// handling JSON (de)serialization of the whole record sequence.
type Collection[T any] struct {
	name   string
	docs   DocumentStore
	logger *zap.Logger
}

// NewCollection creates a typed collection view.
func NewCollection[T any](name string, docs DocumentStore, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{name: name, docs: docs, logger: logger}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load reads and decodes the whole collection. A collection that has never
// been written, cannot be read or holds an unparsable document loads as empty;
// this is the fail-open behavior expected of a single-user local tool.
func (c *Collection[T]) Load(ctx context.Context) []T {
	doc, err := c.docs.Read(ctx, c.name)
	if err != nil {
		c.logger.Warn("Record store read failed, treating collection as empty",
			zap.String("collection", c.name), zap.Error(err))
		return []T{}
	}
	if len(doc) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(doc, &records); err != nil {
		c.logger.Warn("Record store document is corrupt, treating collection as empty",
			zap.String("collection", c.name), zap.Error(err))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save encodes and writes the whole collection back, replacing any previous
// document.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: marshal collection %s: %w", c.name, err)
	}
	if err := c.docs.Write(ctx, c.name, doc); err != nil {
		return fmt.Errorf("store: write collection %s: %w", c.name, err)
	}
	return nil
}
