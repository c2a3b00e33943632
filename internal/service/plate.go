package service

import (
	"regexp"
	"strings"

	apperrors "parklot/internal/errors"
)

// plateRegexp matches Mercosul and legacy Brazilian plates: 3 letters, 1
// digit, 1 letter or digit, 2 digits (e.g. ABC1D23, ABC1234).
var plateRegexp = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

// normalizePlate uppercases the plate and validates its format. Storage and
// comparisons always use the normalized form.
func normalizePlate(plate string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(plate))
	if !plateRegexp.MatchString(normalized) {
		return "", apperrors.ErrInvalidPlate
	}
	return normalized, nil
}
