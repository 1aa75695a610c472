package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// ValidateName enforces business rules for display names beyond the
// structural constraints of the Name constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.Name) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("name must not contain consecutive spaces")
	}

	return nil
}
