package usecase

// cityCodeAliases maps metropolitan-area IATA city codes to their member
// airport codes. A search destination given as a city code matches any
// member airport.
var cityCodeAliases = map[string][]string{
	"NYC": {"JFK", "LGA", "EWR"},
	"LON": {"LHR", "LGW", "STN", "LTN", "LCY"},
	"PAR": {"CDG", "ORY", "BVA"},
	"TYO": {"NRT", "HND"},
	"MOW": {"SVO", "DME", "VKO"},
	"CHI": {"ORD", "MDW"},
	"WAS": {"IAD", "DCA", "BWI"},
	"MIL": {"MXP", "LIN", "BGY"},
	"SAO": {"GRU", "CGH", "VCP"},
	"SEL": {"ICN", "GMP"},
	"OSA": {"KIX", "ITM"},
	"BUE": {"EZE", "AEP"},
	"RIO": {"GIG", "SDU"},
	"STO": {"ARN", "BMA", "NYO"},
}

// CityAirports returns the member airport codes for a city code, or nil if
// the code is not a known metropolitan alias.
func CityAirports(code string) []string {
	return cityCodeAliases[code]
}

// MatchesDestination reports whether a flight arriving at the given airport
// satisfies a search for the given destination code. The match succeeds when
// the codes are equal, or when the destination is a city code and the
// airport is one of its members.
func MatchesDestination(arrivalAirport, destination string) bool {
	if arrivalAirport == "" {
		return false
	}
	if arrivalAirport == destination {
		return true
	}
	for _, member := range cityCodeAliases[destination] {
		if member == arrivalAirport {
			return true
		}
	}
	return false
}
