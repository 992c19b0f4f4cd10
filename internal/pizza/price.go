package pizza

import (
	"github.com/shopspring/decimal"

	"github.com/pizzetta/pizzetta/internal/catalog"
)

// Price computes the current price of a configuration against a catalog
// snapshot. An incomplete configuration (no base or no size) has no
// meaningful price and yields zero. Names the snapshot cannot resolve
// contribute nothing; a topping selected twice is priced twice.
//
// Pure function of its inputs. Prices are not cached on the
// configuration, so callers must re-invoke whenever the snapshot changes.
func Price(c Configuration, snap catalog.Snapshot) decimal.Decimal {
	if c.Base == "" || c.Size == "" {
		return decimal.Zero
	}

	total := decimal.Zero
	if base, ok := snap.Base(c.Base); ok {
		total = total.Add(base.Price)
	}
	if size, ok := snap.Size(c.Size); ok {
		total = total.Add(size.Price)
	}
	for _, name := range c.Toppings {
		if topping, ok := snap.Topping(name); ok {
			total = total.Add(topping.Price)
		}
	}
	return total
}
