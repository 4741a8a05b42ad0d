// internal/normalize/list.go
package normalize

import "github.com/mahabubulhasibshawon/storefront-sync/internal/domain"

// Result is a normalized list. Dropped counts entries that could not become a
// canonical record; Nested counts entries served in a nested shape.
type Result[T any] struct {
	Records []T
	Dropped int
	Nested  int
}

var envelopeKeys = []string{"data", "results", "items", "customers", "orders", "payments", "notifications"}

// Items unwraps the list envelopes used across backend versions: a bare array,
// or an object holding the array under a well-known key, at most two levels deep.
func Items(payload any) []any {
	return items(payload, 2)
}

func items(payload any, depth int) []any {
	switch t := payload.(type) {
	case []any:
		return t
	case map[string]any:
		if depth == 0 {
			return nil
		}
		for _, k := range envelopeKeys {
			if v, ok := t[k]; ok && v != nil {
				if list := items(v, depth-1); list != nil {
					return list
				}
			}
		}
	}
	return nil
}

func list[T any](payload any, one func(any) (T, bool), shape func(any) Shape) Result[T] {
	raw := Items(payload)
	res := Result[T]{Records: make([]T, 0, len(raw))}
	for _, item := range raw {
		rec, ok := one(item)
		if !ok {
			res.Dropped++
			continue
		}
		if shape != nil && shape(item) == ShapeNested {
			res.Nested++
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

func Customers(payload any) Result[domain.Customer] {
	return list(payload, Customer, CustomerShape)
}

func Orders(payload any) Result[domain.Order] {
	return list(payload, Order, OrderShape)
}

func Payments(payload any) Result[domain.Payment] {
	return list(payload, Payment, nil)
}

func Notifications(payload any) Result[domain.Notification] {
	return list(payload, Notification, nil)
}
