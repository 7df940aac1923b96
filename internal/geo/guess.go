package geo

import "strings"

// Coordinate is a latitude/longitude pair in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pair returns the coordinate in [lat, lng] order
func (c Coordinate) Pair() [2]float64 {
	return [2]float64{c.Lat, c.Lng}
}

type place struct {
	keywords []string
	coord    Coordinate
}

// Evaluated top to bottom; the first group with a hit wins.
var places = []place{
	{[]string{"washington", "dc", "white house"}, Coordinate{38.8951, -77.0364}},
	{[]string{"new york", "nyc"}, Coordinate{40.7128, -74.0060}},
	{[]string{"london"}, Coordinate{51.5074, -0.1278}},
	{[]string{"paris"}, Coordinate{48.8566, 2.3522}},
	{[]string{"moscow"}, Coordinate{55.7558, 37.6173}},
	{[]string{"beijing", "china"}, Coordinate{39.9042, 116.4074}},
	{[]string{"ukraine", "kyiv", "kiev"}, Coordinate{50.4501, 30.5234}},
	{[]string{"israel", "jerusalem"}, Coordinate{31.7683, 35.2137}},
	{[]string{"gaza"}, Coordinate{31.5, 34.4667}},
	{[]string{"iran", "tehran"}, Coordinate{35.6892, 51.3890}},
}

// Unknown is returned when nothing matches: open water in the mid-Atlantic.
var Unknown = Coordinate{30.0, -30.0}

// GuessLocation maps text to a coordinate by plain substring search.
// Matching is case-insensitive and never fails.
func GuessLocation(text string) Coordinate {
	lower := strings.ToLower(text)
	for _, p := range places {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return p.coord
			}
		}
	}
	return Unknown
}
