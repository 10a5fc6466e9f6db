package discount

import (
	"math"
	"strings"

	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidScope      = errs.Sentinel("invalid deal scope", errs.ErrValidation)
	ErrInvalidPercentage = errs.Sentinel("percentage must be between 0 and 100", errs.ErrValidation)
	ErrMissingTarget     = errs.Sentinel("deal scope requires a target", errs.ErrValidation)
	ErrInvalidPeriod     = errs.Sentinel("deal must end on or after its start date", errs.ErrValidation)
	ErrEmptyCode         = errs.Sentinel("deal code is required", errs.ErrValidation)
)

type Scope string

const (
	ScopeAll         Scope = "all"
	ScopeServices    Scope = "services"
	ScopeSubServices Scope = "subservices"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeServices, ScopeSubServices:
		return Scope(s), nil
	default:
		return "", ErrInvalidScope
	}
}

// Deal is a percentage discount. A nil business id makes it platform-wide.
type Deal struct {
	id          uuid.UUID
	businessID  *uuid.UUID
	name        string
	code        string
	scope       Scope
	targetID    *uuid.UUID
	basisPoints int64
	enabled     bool
	startsAt    string
	endsAt      string
}

type DealSpec struct {
	ID         uuid.UUID
	BusinessID *uuid.UUID
	Name       string
	Code       string
	Scope      string
	TargetID   *uuid.UUID
	Percentage float64
	Enabled    bool
	StartsAt   string
	EndsAt     string
}

func NewDeal(spec DealSpec) (*Deal, error) {
	code := NormalizeCode(spec.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	scope, err := ParseScope(spec.Scope)
	if err != nil {
		return nil, err
	}
	if scope != ScopeAll && (spec.TargetID == nil || *spec.TargetID == uuid.Nil) {
		return nil, ErrMissingTarget
	}
	if spec.Percentage < 0 || spec.Percentage > 100 || math.IsNaN(spec.Percentage) {
		return nil, ErrInvalidPercentage
	}
	if spec.EndsAt < spec.StartsAt {
		return nil, ErrInvalidPeriod
	}

	return &Deal{
		id:          spec.ID,
		businessID:  spec.BusinessID,
		name:        spec.Name,
		code:        code,
		scope:       scope,
		targetID:    spec.TargetID,
		basisPoints: int64(math.Round(spec.Percentage * 100)),
		enabled:     spec.Enabled,
		startsAt:    spec.StartsAt,
		endsAt:      spec.EndsAt,
	}, nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplicableTo reports whether the deal can be redeemed by business on date
// (YYYY-MM-DD). Platform-wide deals apply to every business.
func (d *Deal) ApplicableTo(businessID *uuid.UUID, date string) bool {
	if !d.enabled {
		return false
	}
	if date < d.startsAt || date > d.endsAt {
		return false
	}
	if d.businessID == nil {
		return true
	}
	return businessID != nil && *businessID == *d.businessID
}

func (d *Deal) ID() uuid.UUID          { return d.id }
func (d *Deal) BusinessID() *uuid.UUID { return d.businessID }
func (d *Deal) Name() string           { return d.name }
func (d *Deal) Code() string           { return d.code }
func (d *Deal) Scope() Scope           { return d.scope }
func (d *Deal) TargetID() *uuid.UUID   { return d.targetID }
func (d *Deal) Enabled() bool          { return d.enabled }
func (d *Deal) StartsAt() string       { return d.startsAt }
func (d *Deal) EndsAt() string         { return d.endsAt }

func (d *Deal) Percentage() float64 {
	return float64(d.basisPoints) / 100
}

// discountFor returns the discount on price in cents, rounded half up.
func (d *Deal) discountFor(priceCents int64) int64 {
	if priceCents <= 0 {
		return 0
	}
	return (priceCents*d.basisPoints + 5000) / 10000
}

func (d *Deal) covers(serviceID, subServiceID uuid.UUID) bool {
	switch d.scope {
	case ScopeAll:
		return true
	case ScopeServices:
		return d.targetID != nil && *d.targetID == serviceID
	case ScopeSubServices:
		return d.targetID != nil && *d.targetID == subServiceID
	default:
		return false
	}
}
