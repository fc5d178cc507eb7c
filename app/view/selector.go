// Package view picks and renders the HTML for a request: the whole page for
// ordinary navigation, or a single fragment when htmx asks for one.
package view

import (
	"net/http"
	"net/url"
)

// Template names one renderable output.
type Template string

const (
	// Page is the full document: layout, navigation and a content fragment.
	Page Template = "base"

	Home          Template = "home_content"
	Catalog       Template = "catalog"
	ProductDetail Template = "product_detail"
	SearchInput   Template = "search_input"
	SearchButton  Template = "search_button"
	FilterModal   Template = "filter_modal"
	About         Template = "about"
	PriceList     Template = "price_list"
)

// Fragments lists every template that can be rendered on its own.
var Fragments = []Template{Home, Catalog, ProductDetail, SearchInput, SearchButton, FilterModal, About, PriceList}

// PartialHeader is set by htmx on every request it issues.
const PartialHeader = "HX-Request"

// Intent is what a partial catalog request wants to see.
type Intent int

const (
	IntentDefault Intent = iota
	IntentShowSearch
	IntentResetSearch
	IntentShowFilters
)

// IsPartial reports whether r asks for a fragment instead of the full page.
func IsPartial(r *http.Request) bool {
	return r.Header.Get(PartialHeader) != ""
}

// ParseIntent reads the intent flags from query. Only the literal value
// "true" sets a flag; when several are set, show_search wins over
// reset_search, which wins over show_filters.
func ParseIntent(query url.Values) Intent {
	switch {
	case query.Get("show_search") == "true":
		return IntentShowSearch
	case query.Get("reset_search") == "true":
		return IntentResetSearch
	case query.Get("show_filters") == "true":
		return IntentShowFilters
	}
	return IntentDefault
}

// ForPage returns Page for full loads and fragment for partial ones.
func ForPage(r *http.Request, fragment Template) Template {
	if !IsPartial(r) {
		return Page
	}
	return fragment
}

// ForCatalog picks the template for a catalog request.
func ForCatalog(r *http.Request) Template {
	if !IsPartial(r) {
		return Page
	}
	switch ParseIntent(r.URL.Query()) {
	case IntentShowSearch:
		return SearchInput
	case IntentResetSearch:
		return SearchButton
	case IntentShowFilters:
		return FilterModal
	}
	return Catalog
}
