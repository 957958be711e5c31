package validate

import (
	"regexp"
	"strconv"
	"strings"

	"almacen/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 150 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ProductName validates a displayable product name.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Qty parses a strict non-negative integer form field.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MovementQty parses a strictly positive quantity; the ledger never
// records zero or negative movements.
func MovementQty(s string) (int, bool) {
	n, ok := Qty(s)
	return n, ok && n > 0
}

// Direction validates the movement type field.
func Direction(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == domain.MovementIn || s == domain.MovementOut
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Password enforces a simple length window for login/registration checks.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 72 // bcrypt input cap
}
