// Package catalog holds the fixed service offerings used by the cart
// and checkout quote endpoint.
package catalog

// Offering is one purchasable engagement.
type Offering struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var offerings = []Offering{
	{ID: "audit", Name: "Product & UX Audit", Price: 0},
	{ID: "discovery", Name: "Discovery Program", Price: 25000},
	{ID: "sprint", Name: "Add a Sprint", Price: 6200},
}

// Offerings returns the full catalog in display order.
func Offerings() []Offering {
	out := make([]Offering, len(offerings))
	copy(out, offerings)
	return out
}

// OfferingByID looks up one offering; ok is false when unknown.
func OfferingByID(id string) (Offering, bool) {
	for _, o := range offerings {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

// OfferingByName looks up one offering by display name.
func OfferingByName(name string) (Offering, bool) {
	for _, o := range offerings {
		if o.Name == name {
			return o, true
		}
	}
	return Offering{}, false
}
