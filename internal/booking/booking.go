// Package booking submits booking requests to the platform that owns a
// stored listing. Every platform wants its own payload shape, so the
// service resolves a PayloadBuilder by platform name before any network
// call; a platform without a builder fails fast.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/slivka2007/golfing-grouper/internal/apiclient"
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/store"
)

const bookingsPath = "bookings"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Player identifies one member of the booking party.
type Player struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// Details carries everything a platform needs to place a booking.
type Details struct {
	Players         []Player `json:"players" validate:"required,min=1,dive"`
	PaymentMethodID string   `json:"payment_method_id" validate:"required"`
}

// Validate checks the details before any payload is built.
func (d Details) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid booking details: %w", err)
	}
	return nil
}

// PlayerCount is the size of the party.
func (d Details) PlayerCount() int { return len(d.Players) }

// Confirmation is the outcome of a successful booking. Raw carries the
// platform's response verbatim for the caller to keep.
type Confirmation struct {
	Reference string          `json:"reference"`
	Code      string          `json:"confirmation_code"`
	Raw       json.RawMessage `json:"raw"`
}

// NoFormatError means no payload builder is registered for the listing's
// platform. Fatal: the booking is rejected before any network call.
type NoFormatError struct {
	Platform string
}

func (e *NoFormatError) Error() string {
	return fmt.Sprintf("no booking format defined for platform %s", e.Platform)
}

// SubmitError means the platform rejected or failed the booking call.
// Transient from this package's point of view; the caller decides whether
// to retry.
type SubmitError struct {
	PlatformID int
	Status     int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("booking failed on platform %d: %v", e.PlatformID, e.Err)
	}
	return fmt.Sprintf("booking failed on platform %d: status %d", e.PlatformID, e.Status)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Service books stored listings against their owning platforms.
type Service struct {
	store      store.Store
	registry   platform.Registry
	builders   Builders
	httpClient *http.Client
}

// New creates a booking Service. A nil builders map gets the default set.
func New(s store.Store, registry platform.Registry, builders Builders) *Service {
	if builders == nil {
		builders = DefaultBuilders()
	}
	return &Service{
		store:      s,
		registry:   registry,
		builders:   builders,
		httpClient: &http.Client{Timeout: apiclient.RequestTimeout},
	}
}

// Book places a booking for the stored listing. The listing's platform must
// be API-configured and have a registered payload builder; either check
// failing means no request is sent. Each attempt carries a fresh client
// reference so platform-side idempotency can key on it.
func (s *Service) Book(ctx context.Context, listingID int, details Details) (Confirmation, error) {
	if err := details.Validate(); err != nil {
		return Confirmation{}, err
	}

	listing, err := s.store.Get(ctx, listingID)
	if err != nil {
		return Confirmation{}, fmt.Errorf("resolving listing %d: %w", listingID, err)
	}

	p, err := s.registry.Lookup(listing.PlatformID)
	if err != nil {
		return Confirmation{}, err
	}
	if err := p.CheckAPI(); err != nil {
		return Confirmation{}, err
	}

	builder, ok := s.builders[p.Name]
	if !ok {
		return Confirmation{}, &NoFormatError{Platform: p.Name}
	}
	payload := builder.Build(listing, details)

	reference := uuid.NewString()
	logger.Info("submitting booking", logger.Fields{
		"listing_id":  listing.ID,
		"platform_id": p.ID,
		"platform":    p.Name,
		"reference":   reference,
		"players":     details.PlayerCount(),
	})

	req, err := apiclient.NewSling(s.httpClient, p).
		Post(bookingsPath).
		Set("X-Booking-Reference", reference).
		BodyJSON(payload).
		Request()
	if err != nil {
		return Confirmation{}, fmt.Errorf("building booking request: %w", err)
	}

	resp, err := s.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return Confirmation{}, &SubmitError{PlatformID: p.ID, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Confirmation{}, &SubmitError{PlatformID: p.ID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Confirmation{}, &SubmitError{PlatformID: p.ID, Status: resp.StatusCode}
	}

	var body struct {
		ConfirmationCode string `json:"confirmation_code"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Confirmation{}, &SubmitError{PlatformID: p.ID, Err: fmt.Errorf("decoding confirmation: %w", err)}
	}

	logger.Info("booking confirmed", logger.Fields{
		"listing_id":        listing.ID,
		"platform_id":       p.ID,
		"reference":         reference,
		"confirmation_code": body.ConfirmationCode,
	})

	return Confirmation{
		Reference: reference,
		Code:      body.ConfirmationCode,
		Raw:       json.RawMessage(raw),
	}, nil
}
