// Package audit records denied access attempts. Records are stamped here and
// fanned out to one or more sinks.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
)

// Sink receives audit records
type Sink interface {
	Write(ctx context.Context, rec domain.AuditRecord) error
}

// Publisher stamps audit records and hands them to a sink
type Publisher struct {
	sink Sink
	now  func() time.Time
}

// NewPublisher creates a Publisher writing to sink
func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink, now: time.Now}
}

// Emit records that user was denied, with a free-text detail
func (p *Publisher) Emit(ctx context.Context, user, detail string) (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:        uuid.NewString(),
		User:      user,
		Detail:    detail,
		Timestamp: p.now(),
	}
	if err := p.sink.Write(ctx, rec); err != nil {
		return rec, fmt.Errorf("writing audit record: %w", err)
	}
	return rec, nil
}

// ConsoleSink prints records to the operator's console
type ConsoleSink struct {
	con *console.Console
}

// NewConsoleSink creates a sink printing to con
func NewConsoleSink(con *console.Console) *ConsoleSink {
	return &ConsoleSink{con: con}
}

// Write prints the record
func (s *ConsoleSink) Write(_ context.Context, rec domain.AuditRecord) error {
	s.con.Printf("  [AUDITORÍA] Usuario '%s' — %s — %s\n",
		rec.User, rec.Detail, rec.Timestamp.Format("2006-01-02 15:04:05"))
	return nil
}

// MultiSink writes each record to every sink, continuing past failures
type MultiSink []Sink

// Write fans the record out and joins any errors
func (m MultiSink) Write(ctx context.Context, rec domain.AuditRecord) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MemorySink keeps records in memory
type MemorySink struct {
	Records []domain.AuditRecord
}

// Write appends the record
func (m *MemorySink) Write(_ context.Context, rec domain.AuditRecord) error {
	m.Records = append(m.Records, rec)
	return nil
}
