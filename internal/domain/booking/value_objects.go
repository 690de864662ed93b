package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidBookingDate = errors.New("invalid booking date")
	ErrArrivalSlotMissing = errors.New("arrival time is required")
	ErrPartySizeTooSmall  = errors.New("party size must be at least 2")
	ErrPackageRequired    = errors.New("a preset package or at least one spirit is required")
	ErrUnknownPackage     = errors.New("unknown package")
	ErrInvalidVenueArea   = errors.New("invalid venue area")
)

const bookingDateLayout = "2006-01-02"

const MinPartySize = 2

// Preset drink packages as published on the bookings page.
var presetPackages = map[string]struct{}{
	"Essential Package": {},
	"Premium Package":   {},
	"VIP Package":       {},
}

var venueAreas = map[string]struct{}{
	"upstairs":   {},
	"downstairs": {},
}

type PackageType string

const (
	PackagePreset PackageType = "preset"
	PackageCustom PackageType = "custom"
)

// Package is either a named preset or a free-form bottle selection, never
// both. The zero value is invalid; build one through the constructors.
type Package struct {
	packageType PackageType
	preset      string
	spirits     []string
	champagne   *string
}

func NewPresetPackage(name string) (Package, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Package{}, ErrPackageRequired
	}
	if _, ok := presetPackages[trimmed]; !ok {
		return Package{}, ErrUnknownPackage
	}
	return Package{packageType: PackagePreset, preset: trimmed}, nil
}

func NewCustomPackage(spirits []string, champagne *string) (Package, error) {
	cleaned := make([]string, 0, len(spirits))
	for _, s := range spirits {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return Package{}, ErrPackageRequired
	}

	var champagnePtr *string
	if champagne != nil {
		if trimmed := strings.TrimSpace(*champagne); trimmed != "" {
			champagnePtr = &trimmed
		}
	}

	return Package{packageType: PackageCustom, spirits: cleaned, champagne: champagnePtr}, nil
}

func (p Package) Type() PackageType  { return p.packageType }
func (p Package) Preset() string     { return p.preset }
func (p Package) Spirits() []string  { return p.spirits }
func (p Package) Champagne() *string { return p.champagne }

// Label is the human-readable package name used in confirmation emails.
func (p Package) Label() string {
	if p.packageType == PackagePreset {
		return p.preset
	}
	return "Custom package"
}

func validBookingDate(date string) bool {
	_, err := time.Parse(bookingDateLayout, date)
	return err == nil
}

func validVenueArea(area string) bool {
	_, ok := venueAreas[area]
	return ok
}
