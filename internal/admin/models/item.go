// Package models defines the records hydrated from authority responses.
// Nothing here is ever constructed locally or persisted on disk; items and
// sellers exist only for the lifetime of the view that fetched them.
package models

// ApprovalStatus is the moderation state of an item as last reported by the
// authority.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Item is a seller-submitted product. Items shown in the moderation
// workspace are always StatusPending as last known from the authority; once
// a decision is confirmed the item leaves the local working set and the
// authority becomes the sole holder of its new status.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Images      []string       `json:"images"`
	Category    string         `json:"category"`
	Status      ApprovalStatus `json:"approvalStatus"`
	Seller      SellerSummary  `json:"seller"`
}
