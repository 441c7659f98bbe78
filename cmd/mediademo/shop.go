package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mediakit/pkg/logger"
	"github.com/dmitrymomot/mediakit/pkg/mediaversion"
	"github.com/dmitrymomot/mediakit/pkg/routes"
	"github.com/dmitrymomot/mediakit/pkg/session"
)

type product struct {
	ID    int
	Name  string
	Price string
}

var catalog = []product{
	{ID: 1, Name: "Trail shoes", Price: "89.00"},
	{ID: 2, Name: "Rain jacket", Price: "129.00"},
	{ID: 3, Name: "Thermos", Price: "24.50"},
}

func findProduct(id int) (product, bool) {
	i := slices.IndexFunc(catalog, func(p product) bool { return p.ID == id })
	if i < 0 {
		return product{}, false
	}
	return catalog[i], true
}

const cartKey = "items"

// shop renders the demo pages. Every link goes through the resolver so it
// keeps the visitor's version.
type shop struct {
	rv    *mediaversion.Resolver
	table *routes.Table
	cart  *session.Namespace
	log   *slog.Logger
}

func newShop(rv *mediaversion.Resolver, table *routes.Table, sessions *session.Manager, log *slog.Logger) *shop {
	return &shop{
		rv:    rv,
		table: table,
		cart:  sessions.Namespace("cart", 0),
		log:   log,
	}
}

func (s *shop) register() {
	s.table.Get("home", "/", s.home)
	s.table.Get("product", "/products/{id:[0-9]+}", s.product)
	s.table.Get("cart", "/cart", s.showCart)
	// any method, so the form action keeps the version prefix
	s.table.Handle("", "cart_add", "/cart/items", http.HandlerFunc(s.addToCart))
}

type page struct {
	ctx      context.Context
	link     func(name, version string, kv ...string) string
	Title    string
	Version  string
	Current  string
	Params   url.Values
	Versions []string
	Products []product
	Product  *product
	Cart     []product
}

func (s *shop) newPage(r *http.Request, title, current string, params url.Values) *page {
	p := &page{
		ctx:      r.Context(),
		Title:    title,
		Version:  mediaversion.VersionFromContext(r.Context()),
		Current:  current,
		Params:   params,
		Versions: s.rv.Registry().Keys(),
	}
	p.link = func(name, version string, kv ...string) string {
		return s.link(p, name, version, kv...)
	}
	return p
}

// link renders a route for the page, optionally in another version.
func (s *shop) link(p *page, name, version string, kv ...string) string {
	route, err := s.table.Lookup(name)
	if err != nil {
		s.log.ErrorContext(p.ctx, "unknown route in template", logger.Error(err))
		return "#"
	}

	params := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		params.Set(kv[i], kv[i+1])
	}
	if name == p.Current {
		for k, v := range p.Params {
			if !params.Has(k) {
				params[k] = v
			}
		}
	}
	if version != "" {
		params.Set(s.rv.Config().VersionParam, version)
	}

	u, err := s.rv.URL(p.ctx, route, params)
	if err != nil {
		s.log.ErrorContext(p.ctx, "build link", logger.Error(err))
	}
	return u
}

func (s *shop) render(w http.ResponseWriter, p *page, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout(p, content).Render(p.ctx, w); err != nil {
		s.log.ErrorContext(p.ctx, "render page", logger.Error(err))
	}
}

func (s *shop) home(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "Shop", "home", nil)
	p.Products = catalog
	s.render(w, p, productList(p))
}

func (s *shop) product(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	item, ok := findProduct(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p := s.newPage(r, item.Name, "product", url.Values{"id": {strconv.Itoa(id)}})
	p.Product = &item
	s.render(w, p, productDetail(p))
}

func (s *shop) showCart(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, "Cart", "cart", nil)
	for _, id := range s.items(r) {
		if item, ok := findProduct(id); ok {
			p.Cart = append(p.Cart, item)
		}
	}
	s.render(w, p, cartItems(p))
}

func (s *shop) addToCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.Atoi(r.PostFormValue("id"))
	if _, ok := findProduct(id); err != nil || !ok {
		http.Error(w, "unknown product", http.StatusBadRequest)
		return
	}

	items := append(s.items(r), id)
	if err := s.cart.Set(r.Context(), w, r, cartKey, items); err != nil {
		s.log.ErrorContext(r.Context(), "save cart", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	cart, _ := s.table.Lookup("cart")
	target, err := s.rv.URL(r.Context(), cart, nil)
	if err != nil {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// items reads the cart. Values decoded from JSON stores come back as []any.
func (s *shop) items(r *http.Request) []int {
	v, ok, err := s.cart.Get(r.Context(), r, cartKey)
	if err != nil || !ok {
		return nil
	}
	switch list := v.(type) {
	case []int:
		return slices.Clone(list)
	case []any:
		out := make([]int, 0, len(list))
		for _, x := range list {
			if f, ok := x.(float64); ok {
				out = append(out, int(f))
			}
		}
		return out
	}
	return nil
}
