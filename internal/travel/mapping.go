package travel

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	CurrencySymbol    = "$"
	DefaultMatchScore = 90

	UnknownDestination = "Unknown destination"
	UnknownCountry     = "N/A"
	PriceUnavailable   = CurrencySymbol + "N/A"
	DurationUnknown    = "N/A"
)

// MapRemotePackages adapts the endpoint payload to TravelPackage records.
// IDs follow response order; tags are the user's interests.
func MapRemotePackages(remote []RemotePackage, interests []string) []TravelPackage {
	out := make([]TravelPackage, 0, len(remote))
	for i, r := range remote {
		out = append(out, MapRemotePackage(i, r, interests))
	}
	return out
}

func MapRemotePackage(index int, r RemotePackage, interests []string) TravelPackage {
	name := strings.TrimSpace(deref(r.Destination))
	if name == "" {
		name = UnknownDestination
	}

	country := strings.TrimSpace(deref(r.CountryCode))
	if country == "" {
		country = UnknownCountry
	}

	lat, lng := derefFloat(r.Lat), derefFloat(r.Lng)
	score := DefaultMatchScore

	return TravelPackage{
		ID:          index,
		Key:         StableKey(name, lat, lng),
		Name:        name,
		Country:     country,
		City:        cityOf(name),
		Lat:         lat,
		Lng:         lng,
		Price:       formatPrice(r.EstimatedBudget),
		Duration:    formatDuration(r.TripDurationDays),
		Description: deref(r.WhyThisDestination),
		Image:       deref(r.Image),
		Tags:        append([]string{}, interests...),
		MatchScore:  &score,
	}
}

// cityOf returns the text after the first comma, or the whole destination.
func cityOf(destination string) string {
	_, after, found := strings.Cut(destination, ",")
	after = strings.TrimSpace(after)
	if !found || after == "" {
		return destination
	}
	return after
}

func formatPrice(b *EstimatedBudget) string {
	if b == nil || b.TotalTrip == nil {
		return PriceUnavailable
	}
	total := *b.TotalTrip
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return PriceUnavailable
	}
	return FormatPrice(total)
}

// FormatPrice renders a whole-dollar amount with thousands separators.
func FormatPrice(amount float64) string {
	return CurrencySymbol + humanize.Comma(int64(math.Round(amount)))
}

func formatDuration(days *float64) string {
	if days == nil || math.IsNaN(*days) || math.IsInf(*days, 0) {
		return DurationUnknown
	}
	n := int64(math.Round(*days))
	if n <= 0 {
		return DurationUnknown
	}
	return humanize.Comma(n) + " days"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil || math.IsNaN(*f) {
		return 0
	}
	return *f
}
