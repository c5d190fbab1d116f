package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrder selects how the catalog is displayed.
type SortOrder int

const (
	// SortLoadOrder keeps file order. It is the initial order and is not offered
	// by the selectors.
	SortLoadOrder SortOrder = iota
	SortNewestFirst
	SortOldestFirst
	SortBrandAsc
	SortBrandDesc
)

var sortOrderNames = map[SortOrder]string{
	SortLoadOrder:   "load-order",
	SortNewestFirst: "newest-first",
	SortOldestFirst: "oldest-first",
	SortBrandAsc:    "brand-asc",
	SortBrandDesc:   "brand-desc",
}

var sortOrderLabels = map[SortOrder]string{
	SortLoadOrder:   "File order",
	SortNewestFirst: "Newest to oldest",
	SortOldestFirst: "Oldest to newest",
	SortBrandAsc:    "Brand A to Z",
	SortBrandDesc:   "Brand Z to A",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// Label is the human-readable name used by the sort selectors.
func (o SortOrder) Label() string {
	if label, ok := sortOrderLabels[o]; ok {
		return label
	}
	return o.String()
}

// SelectableOrders lists the orders offered to the user, in selector order.
func SelectableOrders() []SortOrder {
	return []SortOrder{SortNewestFirst, SortOldestFirst, SortBrandAsc, SortBrandDesc}
}

// ParseSortOrder accepts the names produced by String. An empty name is the
// load order.
func ParseSortOrder(name string) (SortOrder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SortLoadOrder, nil
	}
	for order, n := range sortOrderNames {
		if n == name {
			return order, nil
		}
	}
	return SortLoadOrder, fmt.Errorf("%w: %q", ErrUnknownSortOrder, name)
}

// Sorted returns a stably sorted copy of cars. The input is never modified, so
// ties always keep their load order.
func Sorted(cars []Car, order SortOrder) []Car {
	out := slices.Clone(cars)
	if out == nil {
		out = []Car{}
	}

	switch order {
	case SortNewestFirst:
		slices.SortStableFunc(out, func(a, b Car) int { return b.Year - a.Year })
	case SortOldestFirst:
		slices.SortStableFunc(out, func(a, b Car) int { return a.Year - b.Year })
	case SortBrandAsc, SortBrandDesc:
		fold := cases.Fold()
		keys := make(map[string]string, len(out))
		key := func(brand string) string {
			k, ok := keys[brand]
			if !ok {
				k = fold.String(brand)
				keys[brand] = k
			}
			return k
		}
		slices.SortStableFunc(out, func(a, b Car) int {
			c := strings.Compare(key(a.Brand), key(b.Brand))
			if order == SortBrandDesc {
				return -c
			}
			return c
		})
	}

	return out
}
