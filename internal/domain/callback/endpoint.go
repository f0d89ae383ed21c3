package callback

import (
	"fmt"
	"net/url"
	"time"
)

// Endpoint is a registered frontend callback target.
type Endpoint struct {
	id           uint
	name         string
	url          string
	requiresAuth bool
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEndpoint(name, rawURL string, requiresAuth bool) (*Endpoint, error) {
	if name == "" {
		return nil, fmt.Errorf("endpoint name is required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid endpoint URL: %s", rawURL)
	}

	now := time.Now()
	return &Endpoint{
		name:         name,
		url:          rawURL,
		requiresAuth: requiresAuth,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructEndpoint(id uint, name, rawURL string, requiresAuth, isActive bool, createdAt, updatedAt time.Time) *Endpoint {
	return &Endpoint{
		id:           id,
		name:         name,
		url:          rawURL,
		requiresAuth: requiresAuth,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (e *Endpoint) ID() uint             { return e.id }
func (e *Endpoint) Name() string         { return e.name }
func (e *Endpoint) URL() string          { return e.url }
func (e *Endpoint) RequiresAuth() bool   { return e.requiresAuth }
func (e *Endpoint) IsActive() bool       { return e.isActive }
func (e *Endpoint) CreatedAt() time.Time { return e.createdAt }
func (e *Endpoint) UpdatedAt() time.Time { return e.updatedAt }

func (e *Endpoint) SetID(id uint) {
	if e.id == 0 {
		e.id = id
	}
}

func (e *Endpoint) Update(name, rawURL string, requiresAuth, isActive bool) error {
	if name == "" {
		return fmt.Errorf("endpoint name is required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid endpoint URL: %s", rawURL)
	}
	e.name = name
	e.url = rawURL
	e.requiresAuth = requiresAuth
	e.isActive = isActive
	e.updatedAt = time.Now()
	return nil
}
