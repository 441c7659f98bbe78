package main

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components read top to bottom.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) href(name, u string) {
	var safe templ.SafeURL = templ.URL(u)
	h.attr(name, string(safe))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

func layout(p *page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
		h.text(p.Title)
		h.raw("</title></head>\n<body")
		h.attr("class", "version-"+p.Version)
		h.raw(">\n<nav>\n  <a")
		h.href("href", p.link("home", ""))
		h.raw(">Home</a>\n  <a")
		h.href("href", p.link("cart", ""))
		h.raw(">Cart</a>\n  <span>Version:</span>\n  ")
		for _, v := range p.Versions {
			h.raw("<a")
			h.href("href", p.link(p.Current, v))
			if v == p.Version {
				h.raw(" aria-current=\"true\"")
			}
			h.raw(">")
			h.text(v)
			h.raw("</a> ")
		}
		h.raw("\n</nav>\n<h1>")
		h.text(p.Title)
		h.raw("</h1>\n")
		h.component(ctx, content)
		h.raw("</body>\n</html>\n")
		return h.err
	})
}

func productList(p *page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<ul>\n")
		for _, item := range p.Products {
			h.raw("  <li><a")
			h.href("href", p.link("product", "", "id", strconv.Itoa(item.ID)))
			h.raw(">")
			h.text(item.Name)
			h.raw("</a> ")
			h.text(item.Price)
			h.raw("</li>\n")
		}
		h.raw("</ul>\n")
		return h.err
	})
}

func productDetail(p *page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<p>")
		h.text(p.Product.Price)
		h.raw("</p>\n<form method=\"post\"")
		h.href("action", p.link("cart_add", ""))
		h.raw(">\n  <input type=\"hidden\" name=\"id\"")
		h.attr("value", strconv.Itoa(p.Product.ID))
		h.raw(">\n  <button type=\"submit\">Add to cart</button>\n</form>\n")
		return h.err
	})
}

func cartItems(p *page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<ul>\n")
		if len(p.Cart) == 0 {
			h.raw("  <li>Empty</li>\n")
		}
		for _, item := range p.Cart {
			h.raw("  <li>")
			h.text(item.Name + " " + item.Price)
			h.raw("</li>\n")
		}
		h.raw("</ul>\n")
		return h.err
	})
}
