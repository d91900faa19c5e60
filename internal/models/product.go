package models

// Product mirrors one row of the products table. The identifier uniquely
// determines at most one row; price is the only field the maintenance
// tooling mutates.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
