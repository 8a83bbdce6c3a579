package audit

import (
	"context"
	"time"

	"github.com/hochfrequenz/erp-console/internal/domain"
	"github.com/hochfrequenz/erp-console/internal/notify"
)

// AlertTimeout bounds each alert delivery
const AlertTimeout = 3 * time.Second

// AlertSink forwards audit records to supervisors through a notifier
type AlertSink struct {
	store    string
	notifier notify.Notifier
	timeout  time.Duration
}

// NewAlertSink creates a sink sending one alert per record, labelled with
// the store the attempt happened in
func NewAlertSink(store string, n notify.Notifier) *AlertSink {
	return &AlertSink{store: store, notifier: n, timeout: AlertTimeout}
}

// Write sends the alert within ctx, giving up after the sink's timeout
func (s *AlertSink) Write(ctx context.Context, rec domain.AuditRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.notifier.Send(ctx, notify.Alert{Store: s.store, Record: rec})
}
