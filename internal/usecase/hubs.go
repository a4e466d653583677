package usecase

import "sort"

// HubAirports is the static universe of major international hub airports
// considered as intermediate connection points when no direct flight exists.
var HubAirports = []string{
	"DXB", // Dubai
	"IST", // Istanbul
	"DOH", // Doha
	"AMS", // Amsterdam
	"FRA", // Frankfurt
	"CDG", // Paris
	"LHR", // London Heathrow
	"MAD", // Madrid
	"FCO", // Rome
	"MUC", // Munich
	"JFK", // New York JFK
	"ORD", // Chicago
	"DFW", // Dallas
	"ATL", // Atlanta
	"LAX", // Los Angeles
	"SFO", // San Francisco
	"SIN", // Singapore
	"HKG", // Hong Kong
	"ICN", // Seoul
	"NRT", // Tokyo Narita
	"BKK", // Bangkok
	"KUL", // Kuala Lumpur
}

// majorHubs get a higher base priority than the rest of the universe.
var majorHubs = map[string]bool{
	"DXB": true, "IST": true, "DOH": true, "AMS": true,
	"FRA": true, "LHR": true, "SIN": true,
}

// Regional hub groups. Only the European group currently affects priority;
// the others are kept for the coordinate-based scoring that should
// eventually replace the code-prefix heuristic.
var (
	europeanHubs = map[string]bool{
		"AMS": true, "FRA": true, "CDG": true, "LHR": true,
		"MAD": true, "FCO": true, "MUC": true,
	}

	usHubs = map[string]bool{
		"JFK": true, "ORD": true, "DFW": true,
		"ATL": true, "LAX": true, "SFO": true,
	}

	asianHubs = map[string]bool{
		"SIN": true, "HKG": true, "ICN": true,
		"NRT": true, "BKK": true, "KUL": true,
	}

	middleEastHubs = map[string]bool{
		"DXB": true, "IST": true, "DOH": true,
	}
)

// IsHub reports whether the airport code belongs to the hub universe.
func IsHub(code string) bool {
	for _, hub := range HubAirports {
		if hub == code {
			return true
		}
	}
	return false
}

// RelevantHubs returns the hub universe with the origin and destination
// themselves filtered out.
func RelevantHubs(origin, destination string) []string {
	hubs := make([]string, 0, len(HubAirports))
	for _, hub := range HubAirports {
		if hub != origin && hub != destination {
			hubs = append(hubs, hub)
		}
	}
	return hubs
}

// HubPriority scores a candidate hub for the given route. Major hubs start
// at 10, others at 5. European hubs get +5 when either endpoint's code
// starts with "L" or "E".
//
// The letter-prefix check is a crude stand-in for real geography; replacing
// it with a coordinate lookup would change ranking behavior, so it stays
// until that change is deliberate. US, Asian and Middle-East groupings do
// not currently adjust the score.
func HubPriority(origin, hub, destination string) int {
	score := 5
	if majorHubs[hub] {
		score = 10
	}

	if europeanHubs[hub] && (startsWithEuropeanPrefix(origin) || startsWithEuropeanPrefix(destination)) {
		score += 5
	}

	return score
}

// startsWithEuropeanPrefix checks the code-prefix proxy for "European
// airport": IATA codes beginning with L or E.
func startsWithEuropeanPrefix(code string) bool {
	if code == "" {
		return false
	}
	return code[0] == 'L' || code[0] == 'E'
}

// PrioritizeHubs orders hubs by descending priority score. The sort is
// stable so equal-score hubs keep their input order, which keeps the
// ranking deterministic.
func PrioritizeHubs(origin, destination string, hubs []string) []string {
	ranked := make([]string, len(hubs))
	copy(ranked, hubs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return HubPriority(origin, ranked[i], destination) > HubPriority(origin, ranked[j], destination)
	})

	return ranked
}
