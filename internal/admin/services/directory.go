package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhanya-017/infinart-admin/internal/admin/api"
	"github.com/dhanya-017/infinart-admin/internal/admin/models"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// Directory serves the read-only listing views: all sellers, and one
// seller's items. Each view is a single fetch; there is no client-side
// sorting, filtering, or pagination.
//
// Unlike the workspace, fetch failures here are logged and leave the
// sequence empty rather than surfacing an error to the operator. The
// asymmetry mirrors the observed behavior of the original console.
type Directory struct {
	client   api.Client
	sessions SessionResetter
	log      logging.Logger
}

func NewDirectory(client api.Client, sessions SessionResetter, log logging.Logger) *Directory {
	return &Directory{client: client, sessions: sessions, log: log}
}

// Sellers fetches the seller list in authority order. On failure the result
// is empty.
func (d *Directory) Sellers(ctx context.Context) []models.Seller {
	sellers, err := d.client.Sellers(ctx)
	if err != nil {
		d.log.Error(ctx, "sellers fetch failed", "error", err)
		if api.IsAuthFailure(err) {
			d.sessions.ForceLogout(ctx)
		}
		return nil
	}
	return sellers
}

// OpenSellerItems opens the items view for one seller, performing its single
// fetch. On failure the view is returned with an empty sequence.
func (d *Directory) OpenSellerItems(ctx context.Context, sellerID string) *SellerItemsView {
	view := &SellerItemsView{sellerID: sellerID, dir: d}

	items, err := d.client.SellerItems(ctx, sellerID)
	if err != nil {
		d.log.Error(ctx, "seller items fetch failed", "seller", sellerID, "error", err)
		if api.IsAuthFailure(err) {
			d.sessions.ForceLogout(ctx)
		}
		return view
	}
	view.items = items
	return view
}

// SellerItemsView holds one seller's item sequence as fetched on open.
type SellerItemsView struct {
	mu       sync.Mutex
	sellerID string
	items    []models.Item
	dir      *Directory
}

func (v *SellerItemsView) SellerID() string { return v.sellerID }

// Items returns a copy of the sequence in authority order.
func (v *SellerItemsView) Items() []models.Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Item, len(v.items))
	copy(out, v.items)
	return out
}

// Delete removes the item record at the authority and, on confirmed success
// only, drops the id from the local sequence. The seller record itself is
// never touched.
func (v *SellerItemsView) Delete(ctx context.Context, id string) error {
	if err := v.dir.client.DeleteItem(ctx, id); err != nil {
		v.dir.log.Error(ctx, "seller item delete failed", "item", id, "error", err)
		if api.IsAuthFailure(err) {
			v.dir.sessions.ForceLogout(ctx)
		}
		return fmt.Errorf("delete %s: %w", id, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, it := range v.items {
		if it.ID == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			break
		}
	}
	return nil
}
