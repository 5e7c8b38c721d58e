package mgf

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paretje/mzdata/spectrum"
)

// peakSeparator splits the columns of a peak line.
var peakSeparator = regexp.MustCompile(`\t|\s+`)

var (
	errPeakColumns = errors.New("peak line needs at least two columns")
	errEmptyValue  = errors.New("empty value")
)

// looksLikePeak reports whether line starts with an ASCII digit.
func looksLikePeak(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

// parsePeak parses "<mz><sep><intensity>[<sep><extra>...]". Extra columns
// (charge, annotation) are ignored.
func parsePeak(line string) (spectrum.CentroidPeak, error) {
	fields := peakSeparator.Split(line, -1)
	if len(fields) < 2 {
		return spectrum.CentroidPeak{}, errPeakColumns
	}
	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return spectrum.CentroidPeak{}, fmt.Errorf("m/z: %w", err)
	}
	intensity, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return spectrum.CentroidPeak{}, fmt.Errorf("intensity: %w", err)
	}
	return spectrum.CentroidPeak{MZ: mz, Intensity: float32(intensity)}, nil
}

// parsePepMass parses "<mz> [<intensity> [<charge>]]". A missing
// intensity is recorded as zero.
func parsePepMass(value string) (*spectrum.Precursor, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, errEmptyValue
	}
	ion := spectrum.SelectedIon{}
	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("m/z: %w", err)
	}
	ion.MZ = mz
	if len(fields) > 1 {
		intensity, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return nil, fmt.Errorf("intensity: %w", err)
		}
		ion.Intensity = float32(intensity)
	}
	if len(fields) > 2 {
		z, err := parseCharge(fields[2])
		if err != nil {
			return nil, err
		}
		ion.Charge = &z
	}
	return &spectrum.Precursor{Ion: ion}, nil
}

// parseCharge accepts "2", "+2", "-2" and the MGF suffix forms "2+", "2-".
func parseCharge(s string) (int32, error) {
	sign := int64(1)
	switch {
	case strings.HasSuffix(s, "+"):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "-"):
		s = s[:len(s)-1]
		sign = -1
	}
	z, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("charge: %w", err)
	}
	return int32(sign * z), nil
}

// parseRetentionTime parses an RTINSECONDS value.
func parseRetentionTime(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errEmptyValue
	}
	t, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("retention time: %w", err)
	}
	return t, nil
}
