package pizza

import (
	"testing"
)

func TestNew_AssignsIdentity(t *testing.T) {
	a := New()
	b := New()
	if a.ID == "" || b.ID == "" {
		t.Fatalf("New IDs = %q, %q, want non-empty", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("New IDs collide: %q", a.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt is zero, want timestamp")
	}
}

func TestValidate_ChecksAllRulesIndependently(t *testing.T) {
	v := Validate(Configuration{})
	if v.Valid {
		t.Fatalf("Valid = true for empty configuration, want false")
	}
	if v.Errors.Base == "" || v.Errors.Size == "" || v.Errors.Toppings == "" {
		t.Fatalf("Errors = %#v, want all three rules flagged", v.Errors)
	}

	v = Validate(Configuration{Base: "Thin Crust", Toppings: []string{"Bacon", "Onions", "Pepperoni"}})
	if v.Errors.Base != "" || v.Errors.Toppings != "" {
		t.Fatalf("Errors = %#v, want only size flagged", v.Errors)
	}
	if v.Errors.Size == "" {
		t.Fatalf("Errors.Size empty, want size flagged")
	}
	if v.Valid {
		t.Fatalf("Valid = true without a size, want false")
	}
}

func TestValidate_DuplicateToppingsCountTowardMinimum(t *testing.T) {
	cfg := Configuration{
		Base:     "Thin Crust",
		Size:     "Large (14–16 Inches)",
		Toppings: []string{"Bacon", "Bacon", "Onions"},
	}
	v := Validate(cfg)
	if !v.Valid {
		t.Fatalf("Valid = false, want true; errors = %#v", v.Errors)
	}
	if !cfg.Complete() {
		t.Fatalf("Complete() = false, want true")
	}
}

func TestSameRecipe_IgnoresToppingOrderAndIdentity(t *testing.T) {
	a := Configuration{
		ID:       "a",
		Base:     "Thin Crust",
		Size:     "Large (14–16 Inches)",
		Toppings: []string{"Bacon", "Onions", "Pepperoni"},
	}
	b := Configuration{
		ID:       "b",
		Base:     "Thin Crust",
		Size:     "Large (14–16 Inches)",
		Toppings: []string{"Pepperoni", "Bacon", "Onions"},
	}
	if !SameRecipe(a, b) {
		t.Fatalf("SameRecipe = false for reordered toppings, want true")
	}
}

func TestSameRecipe_DistinguishesMultisets(t *testing.T) {
	a := Configuration{Base: "Thin Crust", Size: "Large (14–16 Inches)", Toppings: []string{"Bacon", "Bacon", "Onions"}}
	b := Configuration{Base: "Thin Crust", Size: "Large (14–16 Inches)", Toppings: []string{"Bacon", "Onions"}}
	c := Configuration{Base: "Thin Crust", Size: "Large (14–16 Inches)", Toppings: []string{"Bacon", "Onions", "Onions"}}

	if SameRecipe(a, b) {
		t.Fatalf("SameRecipe = true for different topping counts, want false")
	}
	if SameRecipe(a, c) {
		t.Fatalf("SameRecipe = true for different multisets, want false")
	}
}

func TestSameRecipe_DifferentBaseOrSize(t *testing.T) {
	a := Configuration{Base: "Thin Crust", Size: "Large (14–16 Inches)", Toppings: []string{"Bacon", "Onions", "Pepperoni"}}
	b := a.Clone()
	b.Base = "Stuffed Crust"
	if SameRecipe(a, b) {
		t.Fatalf("SameRecipe = true across bases, want false")
	}
	c := a.Clone()
	c.Size = "Small (8–10 Inches)"
	if SameRecipe(a, c) {
		t.Fatalf("SameRecipe = true across sizes, want false")
	}
}

func TestClone_Independent(t *testing.T) {
	a := Configuration{ID: "a", Base: "Thin Crust", Toppings: []string{"Bacon"}}
	b := a.Clone()
	b.Toppings[0] = "Onions"
	if a.Toppings[0] != "Bacon" {
		t.Fatalf("Clone shares topping storage: %v", a.Toppings)
	}
}
