//go:build api

package testserver

import (
	"context"
	"sync"

	"bootcamp-api/internal/geocoding"
	"bootcamp-api/internal/mailer"
	"bootcamp-api/internal/models"
)

// StubGeocoder resolves addresses from a fixed table so tests don't hit
// the real geocoding API. Unknown addresses resolve to the default
// location (Boston).
type StubGeocoder struct {
	mu        sync.Mutex
	locations map[string]models.Location
}

var _ geocoding.Geocoder = (*StubGeocoder)(nil)

// NewStubGeocoder creates a stub geocoder with the default location.
func NewStubGeocoder() *StubGeocoder {
	return &StubGeocoder{
		locations: make(map[string]models.Location),
	}
}

// SetLocation maps an address (or zipcode) to a location.
func (g *StubGeocoder) SetLocation(address string, lng, lat float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.locations[address] = models.Location{
		Type:             "Point",
		Coordinates:      []float64{lng, lat},
		FormattedAddress: address,
	}
}

// Geocode returns the configured location for the address, or the
// default Boston location when none was configured.
func (g *StubGeocoder) Geocode(_ context.Context, address string) (*models.Location, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if loc, ok := g.locations[address]; ok {
		return &loc, nil
	}
	return &models.Location{
		Type:             "Point",
		Coordinates:      []float64{-71.0589, 42.3601},
		FormattedAddress: address,
		City:             "Boston",
		State:            "MA",
		Zipcode:          "02108",
		Country:          "US",
	}, nil
}

// SentEmail is a single email captured by CaptureMailer.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// CaptureMailer records sent emails instead of delivering them, so tests
// can inspect reset-password emails for their tokens.
type CaptureMailer struct {
	mu   sync.Mutex
	sent []SentEmail
}

var _ mailer.Mailer = (*CaptureMailer)(nil)

// NewCaptureMailer creates an empty capture mailer.
func NewCaptureMailer() *CaptureMailer {
	return &CaptureMailer{}
}

// Send records the email.
func (m *CaptureMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of all captured emails.
func (m *CaptureMailer) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

// LastTo returns the most recent email sent to the given address, or nil.
func (m *CaptureMailer) LastTo(to string) *SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].To == to {
			e := m.sent[i]
			return &e
		}
	}
	return nil
}

// Reset clears captured emails.
func (m *CaptureMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
