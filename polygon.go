package maglayout

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("coordinate is not finite")

// ParsePolygon parses a whitespace separated list of coordinates
func ParsePolygon(s string) ([]float64, error) {
	tokens := strings.Fields(s)
	coords := make([]float64, len(tokens))
	for i, token := range tokens {
		v, errParse := strconv.ParseFloat(token, 64)
		if errParse != nil {
			return nil, &ParseError{Token: token, Position: i, Err: errParse}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Token: token, Position: i, Err: errNotFinite}
		}
		coords[i] = v
	}
	return coords, nil
}
