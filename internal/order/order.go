// Package order builds order submissions from cart contents and
// validates the customer details collected at checkout.
package order

import (
	"regexp"
	"strings"

	"github.com/pizzetta/pizzetta/internal/cart"
	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

// CustomerInfo is the contact information collected by the checkout form.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// CustomerErrors carries one message per failed checkout field. Empty
// strings mean the field passed.
type CustomerErrors struct {
	Name  string
	Email string
	Phone string
}

// Valid reports whether no field failed.
func (e CustomerErrors) Valid() bool {
	return e == CustomerErrors{}
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateCustomer checks every checkout field independently so the form
// can show all problems at once.
func ValidateCustomer(info CustomerInfo) CustomerErrors {
	var errs CustomerErrors

	if strings.TrimSpace(info.Name) == "" {
		errs.Name = "Name is required"
	}
	email := strings.TrimSpace(info.Email)
	if email == "" {
		errs.Email = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs.Email = "Email is invalid"
	}
	if strings.TrimSpace(info.Phone) == "" {
		errs.Phone = "Phone number is required"
	}

	return errs
}

// BuildRequest maps cart line items to the backend order format, resolving
// each configuration's names to catalog ids against the given snapshot.
//
// Toppings that do not resolve are filtered out of their item; items whose
// base or size does not resolve are dropped entirely. The drop is silent
// at the wire level (the backend never sees those items); the returned
// count lets the UI mention it. Dropping instead of failing is a
// long-standing boundary behavior of the backend contract.
func BuildRequest(items []cart.LineItem, customer CustomerInfo, notes string, snap catalog.Snapshot) (pizzeria.OrderRequest, int) {
	transformed := make([]pizzeria.OrderItem, 0, len(items))
	dropped := 0

	for _, item := range items {
		base, baseOK := snap.Base(item.Base)
		size, sizeOK := snap.Size(item.Size)
		if !baseOK || !sizeOK {
			dropped++
			continue
		}

		toppings := make([]pizzeria.OrderTopping, 0, len(item.Toppings))
		for _, name := range item.Toppings {
			topping, ok := snap.Topping(name)
			if !ok {
				continue
			}
			toppings = append(toppings, pizzeria.OrderTopping{ToppingID: topping.ID, Quantity: 1})
		}

		transformed = append(transformed, pizzeria.OrderItem{
			BaseID:   base.ID,
			SizeID:   size.ID,
			Quantity: item.Quantity,
			Toppings: toppings,
		})
	}

	return pizzeria.OrderRequest{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Notes:         notes,
		Items:         transformed,
	}, dropped
}
