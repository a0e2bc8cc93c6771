package travel

// SamplePackages is the local demo catalog. It is not used by the live
// recommendation path unless the sample provider is configured.
func SamplePackages() []TravelPackage {
	pkgs := []TravelPackage{
		{
			ID: 1, Name: "Paris Cultural Immersion", Country: "France", City: "Paris",
			Lat: 48.8566, Lng: 2.3522, Price: "$1,299", Duration: "7 days",
			Description: "Explore the art, history, and culture of the City of Light",
			Image:       "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"culture", "history", "food", "photography"},
		},
		{
			ID: 2, Name: "Bali Wellness Retreat", Country: "Indonesia", City: "Ubud",
			Lat: -8.5069, Lng: 115.2625, Price: "$1,099", Duration: "8 days",
			Description: "Rice terraces, temple mornings and slow spa afternoons",
			Image:       "https://images.pexels.com/photos/2166559/pexels-photo-2166559.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"relaxing", "nature", "photography"},
		},
		{
			ID: 3, Name: "Maldives Overwater Escape", Country: "Maldives", City: "Malé",
			Lat: 4.1755, Lng: 73.5093, Price: "$3,899", Duration: "6 days",
			Description: "Private villas above the lagoon with reef snorkelling at the door",
			Image:       "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"luxury", "relaxing", "nature"},
		},
		{
			ID: 4, Name: "Patagonia Trekking Expedition", Country: "Chile", City: "Torres del Paine",
			Lat: -50.9423, Lng: -73.4068, Price: "$2,499", Duration: "10 days",
			Description: "Glaciers, granite towers and long days on the W trail",
			Image:       "https://images.pexels.com/photos/1562/italian-landscape-mountains-nature.jpg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"adventure", "nature", "photography"},
		},
		{
			ID: 5, Name: "Kyoto Temples and Tea", Country: "Japan", City: "Kyoto",
			Lat: 35.0116, Lng: 135.7681, Price: "$2,199", Duration: "9 days",
			Description: "Zen gardens, tea ceremonies and lantern-lit evenings in Gion",
			Image:       "https://images.pexels.com/photos/1440476/pexels-photo-1440476.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"culture", "history", "food"},
		},
		{
			ID: 6, Name: "Dubai Luxury Weekend", Country: "United Arab Emirates", City: "Dubai",
			Lat: 25.2048, Lng: 55.2708, Price: "$2,799", Duration: "4 days",
			Description: "Skyline suites, desert dinners and the city's best malls",
			Image:       "https://images.pexels.com/photos/1470502/pexels-photo-1470502.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"luxury", "shopping", "food"},
		},
		{
			ID: 7, Name: "Istanbul Bazaars and Bosphorus", Country: "Türkiye", City: "Istanbul",
			Lat: 41.0082, Lng: 28.9784, Price: "$999", Duration: "5 days",
			Description: "Two continents, grand bazaars and ferry rides at sunset",
			Image:       "https://images.pexels.com/photos/1549326/pexels-photo-1549326.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"culture", "history", "shopping", "food"},
		},
		{
			ID: 8, Name: "Iceland Ring Road Adventure", Country: "Iceland", City: "Reykjavík",
			Lat: 64.1466, Lng: -21.9426, Price: "$3,199", Duration: "12 days",
			Description: "Waterfalls, black-sand beaches and northern lights chasing",
			Image:       "https://images.pexels.com/photos/2113566/pexels-photo-2113566.jpeg?auto=compress&cs=tinysrgb&w=800",
			Tags:        []string{"adventure", "nature", "photography"},
		},
	}

	for i := range pkgs {
		pkgs[i].Key = StableKey(pkgs[i].Name, pkgs[i].Lat, pkgs[i].Lng)
	}
	return pkgs
}

// Remote renders a catalog package in the endpoint's wire shape, so local
// results go through the same mapping as live ones.
func (p TravelPackage) Remote() RemotePackage {
	destination := p.Name
	if p.City != "" {
		destination += ", " + p.City
	}
	country := p.Country
	lat, lng := p.Lat, p.Lng
	desc, image := p.Description, p.Image

	r := RemotePackage{
		Destination:        &destination,
		CountryCode:        &country,
		Lat:                &lat,
		Lng:                &lng,
		Image:              &image,
		WhyThisDestination: &desc,
	}
	if days, ok := DurationDays(p.Duration); ok {
		d := float64(days)
		r.TripDurationDays = &d
	}
	if amount, ok := PriceAmount(p.Price); ok {
		total := float64(amount)
		r.EstimatedBudget = &EstimatedBudget{TotalTrip: &total}
	}
	return r
}
