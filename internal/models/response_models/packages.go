package response_models

import "traveldna/internal/travel"

type SamplePackagesResponse struct {
	Source   string                 `json:"source"`
	Packages []travel.TravelPackage `json:"packages"`
}
