package cli

import (
	"context"
	"fmt"
)

// Sellers lists all sellers. A failed fetch shows up as an empty list; the
// directory views carry no error banner by design.
func (a *App) Sellers(ctx context.Context) error {
	sellers := a.directory.Sellers(ctx)
	if len(sellers) == 0 {
		printlnFn("No sellers.")
		return nil
	}
	for _, s := range sellers {
		printlnFn(fmt.Sprintf("%s  %-20s  %-20s  %s", s.ID, s.Name, s.StoreName, s.Email))
	}
	return nil
}

// OpenSellerItems opens the items view for one seller.
func (a *App) OpenSellerItems(ctx context.Context, sellerID string) error {
	a.itemsView = a.directory.OpenSellerItems(ctx, sellerID)
	a.renderSellerItems()
	return nil
}

// RemoveSellerItem deletes one item from the open seller view. The seller
// record itself is never affected.
func (a *App) RemoveSellerItem(ctx context.Context, id string) error {
	if a.itemsView == nil {
		printlnFn("Open a seller's items first ('items <sellerID>').")
		return nil
	}

	if err := a.itemsView.Delete(ctx, id); err != nil {
		printlnFn("Delete failed, the item was left untouched.")
		return err
	}
	a.renderSellerItems()
	return nil
}

func (a *App) renderSellerItems() {
	items := a.itemsView.Items()
	if len(items) == 0 {
		printlnFn("No items for seller", a.itemsView.SellerID())
		return
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("%s  %-20s  %8.2f  %s", it.ID, it.Name, it.Price, it.Status))
	}
}
