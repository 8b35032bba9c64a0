package model

// Product references its category by name, not by foreign key.
type Product struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Category    string  `db:"category" json:"category"`
	ImageURL    string  `db:"image_url" json:"imageUrl"`
	Price       float64 `db:"price" json:"price"`
}
