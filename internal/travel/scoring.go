package travel

import (
	"sort"
	"strconv"
	"strings"
)

const MaxSampleResults = 6

type Preferences struct {
	Personality string
	Pace        string
	BudgetLevel string
	TravelWith  string
	Interests   []string
	DaysRange   string
}

// ScorePackages ranks the catalog against the preferences and keeps the top
// MaxSampleResults. It is a demo heuristic, not the production matcher.
func ScorePackages(catalog []TravelPackage, prefs Preferences) []TravelPackage {
	scored := make([]TravelPackage, 0, len(catalog))
	for _, pkg := range catalog {
		s := Score(pkg, prefs)
		pkg.MatchScore = &s
		pkg.Tags = append([]string{}, pkg.Tags...)
		scored = append(scored, pkg)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].MatchScore > *scored[j].MatchScore
	})

	if len(scored) > MaxSampleResults {
		scored = scored[:MaxSampleResults]
	}
	return scored
}

func Score(pkg TravelPackage, prefs Preferences) int {
	score := 0

	switch prefs.Personality {
	case "culture", "relaxing", "luxury", "adventure":
		if pkg.HasTag(prefs.Personality) {
			score += 30
		}
	}

	for _, interest := range prefs.Interests {
		if pkg.HasTag(interest) {
			score += 15
		}
	}

	price, ok := PriceAmount(pkg.Price)
	if !ok {
		return score
	}
	switch {
	case prefs.BudgetLevel == "value" && price < 1500:
		score += 20
	case prefs.BudgetLevel == "balanced" && price < 2500:
		score += 20
	case prefs.BudgetLevel == "premium" && price > 2000:
		score += 20
	}
	return score
}

// PriceAmount extracts the digits of a price label such as "$1,299".
func PriceAmount(label string) (int, bool) {
	return digitsOf(label)
}

// DurationDays reads the day count of a duration label such as "7 days".
func DurationDays(label string) (int, bool) {
	return digitsOf(label)
}

func digitsOf(label string) (int, bool) {
	var b strings.Builder
	for _, r := range label {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
