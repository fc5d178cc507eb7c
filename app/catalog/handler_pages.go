package catalog

import (
	"net/http"

	"github.com/mytheresa/storefront/app/view"
)

func (h *CatalogHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.layout(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, view.ForPage(r, view.About), view.About, layout)
}

// HandlePrices lists every product with its price, ordered by name.
func (h *CatalogHandler) HandlePrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layout, err := h.layout(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	products, err := h.products.GetPriceList(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := view.PriceListData{Layout: layout, Products: products}
	h.render(w, r, view.ForPage(r, view.PriceList), view.PriceList, data)
}
