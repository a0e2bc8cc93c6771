package travel

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RemoteResponse is the body returned by the recommendation endpoint.
type RemoteResponse struct {
	Packages []RemotePackage `json:"packages"`
}

// RemotePackage fields are pointers so missing values can be told apart from zero.
// A field of the wrong type decodes as missing instead of failing the whole response.
type RemotePackage struct {
	Destination        *string          `json:"destination"`
	CountryCode        *string          `json:"country_code"`
	Lat                *float64         `json:"lat"`
	Lng                *float64         `json:"lng"`
	Image              *string          `json:"image"`
	WhyThisDestination *string          `json:"why_this_destination"`
	TripDurationDays   *float64         `json:"trip_duration_days"`
	EstimatedBudget    *EstimatedBudget `json:"estimated_budget"`
}

type EstimatedBudget struct {
	TotalTrip *float64 `json:"total_trip"`
}

func (r *RemotePackage) UnmarshalJSON(data []byte) error {
	*r = RemotePackage{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	r.Destination = looseString(fields["destination"])
	r.CountryCode = looseString(fields["country_code"])
	r.Lat = looseNumber(fields["lat"])
	r.Lng = looseNumber(fields["lng"])
	r.Image = looseString(fields["image"])
	r.WhyThisDestination = looseString(fields["why_this_destination"])
	r.TripDurationDays = looseNumber(fields["trip_duration_days"])

	var budget map[string]json.RawMessage
	if !isNull(fields["estimated_budget"]) && json.Unmarshal(fields["estimated_budget"], &budget) == nil {
		r.EstimatedBudget = &EstimatedBudget{TotalTrip: looseNumber(budget["total_trip"])}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

func looseString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// looseNumber accepts a JSON number or a numeric string.
func looseNumber(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
