// Package pizza defines pizza configurations and the rules that govern
// them: completeness validation, recipe equality, and dynamic pricing
// against a catalog snapshot.
package pizza

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MinToppings is the minimum number of topping selections a configuration
// needs before it can be added to the cart. Duplicate selections count
// individually.
const MinToppings = 3

// Configuration describes one pizza: a base, a size, and topping
// selections, all referencing catalog entries by name. Base and Size are
// empty until chosen. Toppings keep selection order for display; order
// is irrelevant for equality.
type Configuration struct {
	ID        string
	Base      string
	Size      string
	Toppings  []string
	CreatedAt time.Time
}

// New returns an empty configuration with a fresh identity.
func New() Configuration {
	return Configuration{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	dup := c
	if len(c.Toppings) > 0 {
		dup.Toppings = make([]string, len(c.Toppings))
		copy(dup.Toppings, c.Toppings)
	} else {
		dup.Toppings = nil
	}
	return dup
}

// Complete reports whether the configuration satisfies all build rules.
func (c Configuration) Complete() bool {
	return Validate(c).Valid
}

// ValidationErrors carries one message per failed build rule. Empty
// strings mean the rule passed.
type ValidationErrors struct {
	Base     string
	Size     string
	Toppings string
}

// Validation is the outcome of checking a configuration against the
// build rules.
type Validation struct {
	Valid  bool
	Errors ValidationErrors
}

// Validate checks every build rule independently: a base must be chosen,
// a size must be chosen, and at least MinToppings toppings must be
// selected. All rules are evaluated so the UI can surface every missing
// field at once.
func Validate(c Configuration) Validation {
	var errs ValidationErrors

	if c.Base == "" {
		errs.Base = "Please select a pizza base"
	}
	if c.Size == "" {
		errs.Size = "Please select a pizza size"
	}
	if len(c.Toppings) < MinToppings {
		errs.Toppings = "Please select at least 3 toppings"
	}

	return Validation{
		Valid:  errs == ValidationErrors{},
		Errors: errs,
	}
}

// SameRecipe reports whether two configurations describe the same pizza:
// identical base, identical size, and the same multiset of toppings
// regardless of selection order. Identity (ID, CreatedAt) is ignored.
func SameRecipe(a, b Configuration) bool {
	if a.Base != b.Base || a.Size != b.Size {
		return false
	}
	if len(a.Toppings) != len(b.Toppings) {
		return false
	}
	at := sortedCopy(a.Toppings)
	bt := sortedCopy(b.Toppings)
	for i := range at {
		if at[i] != bt[i] {
			return false
		}
	}
	return true
}

func sortedCopy(values []string) []string {
	dup := make([]string, len(values))
	copy(dup, values)
	sort.Strings(dup)
	return dup
}
