package tle

import (
	"math"
	"strconv"
	"strings"

	"github.com/anupshinde/goeph-frames/astroerr"
)

// Metadata holds the NORAD bookkeeping fields a TLE carries alongside its
// orbital elements: drag term, classification, launch designator, element
// set number, revolution number, and the two line checksums. None of these
// feed TleElements or ToKeplerian; they exist purely for callers that need
// to inspect or re-catalog the element set itself.
type Metadata struct {
	BStarDrag        float64
	Classification   byte
	LaunchDesignator string
	ElementSetNumber int
	RevolutionNumber int
	CheckSums        [2]int
}

// ParseExtended parses both the orbital elements (as Parse does) and the
// NORAD bookkeeping metadata from the same two lines.
func ParseExtended(line1, line2 string) (TleElements, Metadata, error) {
	elements, err := Parse(line1, line2)
	if err != nil {
		return TleElements{}, Metadata{}, err
	}

	bstar, err := parseBStar(line1[53:61])
	if err != nil {
		return TleElements{}, Metadata{}, err
	}

	elementSetNumber, err := strconv.Atoi(strings.TrimSpace(line1[64:68]))
	if err != nil {
		return TleElements{}, Metadata{}, astroerr.NewInvalidCoordinates("invalid element set number")
	}

	revolutionNumber, err := strconv.Atoi(strings.TrimSpace(line2[63:68]))
	if err != nil {
		return TleElements{}, Metadata{}, astroerr.NewInvalidCoordinates("invalid revolution number")
	}

	return elements, Metadata{
		BStarDrag:        bstar,
		Classification:   line1[7],
		LaunchDesignator: strings.TrimSpace(line1[9:17]),
		ElementSetNumber: elementSetNumber,
		RevolutionNumber: revolutionNumber,
		CheckSums:        [2]int{lineChecksum(line1), lineChecksum(line2)},
	}, nil
}

// parseBStar decodes the 8-character B* drag term field: a signed 5-digit
// mantissa with an implied leading decimal point, followed by a signed
// 1-digit power-of-ten exponent (e.g. " 33518-4" means 0.33518e-4).
func parseBStar(field string) (float64, error) {
	if len(field) != 8 {
		return 0, astroerr.NewInvalidCoordinates("invalid B* field width")
	}
	mantissa, err := strconv.Atoi(strings.TrimSpace(field[:6]))
	if err != nil {
		return 0, astroerr.NewInvalidCoordinates("invalid B* mantissa")
	}
	exponent, err := strconv.Atoi(strings.TrimSpace(field[6:]))
	if err != nil {
		return 0, astroerr.NewInvalidCoordinates("invalid B* exponent")
	}
	return float64(mantissa) * 1e-5 * math.Pow(10, float64(exponent)), nil
}

// lineChecksum computes the modulo-10 checksum over the first 68 columns
// of a TLE line (digits add their value, '-' adds 1, everything else adds
// 0), for comparison against the declared checksum in column 69.
func lineChecksum(line string) int {
	sum := 0
	for i := 0; i < 68 && i < len(line); i++ {
		switch c := line[i]; {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}
