// Package service builds normalized service descriptors for discovery and
// health endpoints.
package service

import "github.com/google/uuid"

// Info describes one service instance. Capabilities and Endpoints are never
// nil after New, so descriptors serialize as [] and {} instead of null.
type Info struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description,omitempty"`
	InstanceID   string            `json:"instance_id,omitempty"`
	Capabilities []string          `json:"capabilities"`
	Endpoints    map[string]string `json:"endpoints"`
}

// New normalizes info: a nil Capabilities becomes an empty slice and a nil
// Endpoints an empty map. Every other field passes through unchanged.
func New(info Info) Info {
	if info.Capabilities == nil {
		info.Capabilities = []string{}
	}
	if info.Endpoints == nil {
		info.Endpoints = map[string]string{}
	}
	return info
}

// NewInstanceID returns a unique identifier for one running instance.
func NewInstanceID() string {
	return uuid.NewString()
}

// WithInstanceID stamps a generated InstanceID on info when it carries
// none; a caller-supplied ID is kept.
func WithInstanceID(info Info) Info {
	if info.InstanceID == "" {
		info.InstanceID = NewInstanceID()
	}
	return info
}
