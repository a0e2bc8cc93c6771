// Package travel holds the travel package model, the mapping from the remote
// recommendation payload and the local sample catalog.
package travel

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// keyNamespace scopes package keys so they never collide with other UUIDv5 users.
var keyNamespace = uuid.MustParse("6f1c8a0e-3d4b-5e8f-9a2b-7c6d5e4f3a21")

type TravelPackage struct {
	ID          int      `json:"id"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	MatchScore  *int     `json:"match_score,omitempty"`
}

// StableKey derives a key from destination and coordinates, so the same place
// keeps its identity across refetches and reorderings.
func StableKey(destination string, lat, lng float64) string {
	name := destination + "|" +
		strconv.FormatFloat(lat, 'f', 4, 64) + "|" +
		strconv.FormatFloat(lng, 'f', 4, 64)
	return uuid.NewSHA1(keyNamespace, []byte(name)).String()
}

func (p TravelPackage) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (p TravelPackage) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.City, p.Country)
}
