package customer

// WalkIn is the placeholder customer used for sales not tied to an account.
const WalkIn = "Consumidor Final"

// Customer is someone who can buy on credit.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
}
