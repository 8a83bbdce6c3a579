package domain

import "time"

// AuditRecord captures one denied access attempt
type AuditRecord struct {
	ID        string    `json:"id" yaml:"id"`
	User      string    `json:"user" yaml:"user"`
	Detail    string    `json:"detail" yaml:"detail"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
