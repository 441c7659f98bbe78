// Package routes is a small named route table on top of chi.
//
// Routes are registered under a name with a chi pattern and later rendered
// back into URLs, which lets link builders such as the media version
// resolver work with route names instead of hard-coded paths:
//
//	table := routes.New("")
//	table.Get("product", "/products/{id:[0-9]+}", showProduct)
//	table.Mount(router)
//
//	link, err := table.URL("product", url.Values{"id": {"42"}, "tab": {"reviews"}})
//	// link == "/products/42?tab=reviews"
package routes
