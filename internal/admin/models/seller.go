package models

// Seller is a full seller record as returned by the sellers directory.
// Read-only in this console.
type Seller struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StoreName string `json:"storeName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SellerSummary is the owner reference embedded in item records.
type SellerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StoreName string `json:"storeName"`
	Email     string `json:"email"`
}
