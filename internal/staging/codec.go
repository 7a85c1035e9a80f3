package staging

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wonny/brownian/internal/contracts"
)

// Digits after the decimal point; 16 significant digits round-trip float64 closely.
const precision = 15

// FormatValue renders v the way every artifact stores it (C's %.15e)
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'e', precision, 64)
}

// Encode writes one value per line with no trailing newline
func Encode(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(FormatValue(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses an artifact body.
// Blank lines are skipped; any other line must be a finite decimal number.
// It fails as soon as more than MaxLen values have been read.
func Decode(r io.Reader) ([]float64, error) {
	values := make([]float64, 0, 1024)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil || !decimalSyntax(text) || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: line %d: %q is not a finite number", contracts.ErrMalformedArtifact, line, text)
		}

		if len(values) == contracts.MaxLen {
			return nil, fmt.Errorf("%w: more than %d values", contracts.ErrInvalidInputSize, contracts.MaxLen)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: longer than %d bytes", contracts.ErrMalformedArtifact, line+1, bufio.MaxScanTokenSize)
		}
		return nil, fmt.Errorf("%w: %v", contracts.ErrIOFailure, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", contracts.ErrMalformedArtifact)
	}
	return values, nil
}

// decimalSyntax rejects forms ParseFloat accepts beyond plain decimal and
// scientific notation: hex floats, digit separators, Inf and NaN.
func decimalSyntax(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	}) < 0
}
