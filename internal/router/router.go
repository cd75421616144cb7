// Package router wires every route of the catalog demo API onto a typed
// router. Registration order does not matter for dispatch: the more specific
// pattern wins, so /users/me resolves ahead of /users/{user_id} and the
// trailing-slash collection patterns coexist with their item siblings.
package router

import (
	"github.com/bindhttp/bindhttp/internal/handlers"
	"github.com/bindhttp/bindhttp/pkg/bindhttp"
)

// New builds the fully-registered router. Registering the same method and
// pattern twice panics, so a wiring mistake here fails at startup rather than
// silently shadowing a route.
func New() *bindhttp.TypedRouter {
	r := bindhttp.NewRouter()

	// Path parameters.
	bindhttp.GET(r, "/{$}", &handlers.RootHandler{},
		bindhttp.WithSummary("Greet with the required input"),
		bindhttp.WithTags("path"))
	bindhttp.GET(r, "/items/{item_id}", &handlers.ReadItemHandler{},
		bindhttp.WithSummary("Read an item by integer ID"),
		bindhttp.WithTags("path"))
	bindhttp.GET(r, "/users/me", &handlers.ReadCurrentUserHandler{},
		bindhttp.WithSummary("Read the current user"),
		bindhttp.WithTags("path"))
	bindhttp.GET(r, "/users/{user_id}", &handlers.ReadUserHandler{},
		bindhttp.WithSummary("Read a user by ID"),
		bindhttp.WithTags("path"))
	bindhttp.GET(r, "/models/{model_name}", &handlers.ReadModelHandler{},
		bindhttp.WithSummary("Read an enumerated model"),
		bindhttp.WithTags("path"))
	bindhttp.GET(r, "/files/{file_path...}", &handlers.ReadFileHandler{},
		bindhttp.WithSummary("Read a file by its full path"),
		bindhttp.WithTags("path"))

	// Query parameters.
	bindhttp.GET(r, "/items/{$}", &handlers.ListItemsHandler{},
		bindhttp.WithSummary("List items with skip and limit"),
		bindhttp.WithTags("query"))
	bindhttp.GET(r, "/item/{item_id}", &handlers.ReadItemDetailHandler{},
		bindhttp.WithSummary("Read an item with optional query and short mode"),
		bindhttp.WithTags("query"))
	bindhttp.GET(r, "/req-items/{item_id}", &handlers.ReadRequiredItemHandler{},
		bindhttp.WithSummary("Read an item with a required query"),
		bindhttp.WithTags("query"))
	bindhttp.GET(r, "/item-validation/{$}", &handlers.BoundedQueryHandler{},
		bindhttp.WithSummary("Search with a length-capped query"),
		bindhttp.WithTags("query-validation"))
	bindhttp.GET(r, "/item-regex/{$}", &handlers.PatternQueryHandler{},
		bindhttp.WithSummary("Search with a pattern-constrained query"),
		bindhttp.WithTags("query-validation"))
	bindhttp.GET(r, "/item-ellipsis/{$}", &handlers.RequiredQueryHandler{},
		bindhttp.WithSummary("Search with a required query"),
		bindhttp.WithTags("query-validation"))
	bindhttp.GET(r, "/item-list/{$}", &handlers.ListQueryHandler{},
		bindhttp.WithSummary("Search with a repeated query key"),
		bindhttp.WithTags("query-validation"))
	bindhttp.GET(r, "/query-metadata/{$}", &handlers.MetadataQueryHandler{},
		bindhttp.WithSummary("Search with a documented query"),
		bindhttp.WithTags("query-metadata"))
	bindhttp.GET(r, "/alias-param/{$}", &handlers.AliasQueryHandler{},
		bindhttp.WithSummary("Search with an aliased query key"),
		bindhttp.WithTags("query-metadata"))
	bindhttp.GET(r, "/deprecate-param/{$}", &handlers.DeprecatedQueryHandler{},
		bindhttp.WithSummary("Search with a deprecated query"),
		bindhttp.WithTags("query-metadata"))
	bindhttp.GET(r, "/exclude-from-openapi/{$}", &handlers.HiddenQueryHandler{},
		bindhttp.WithSummary("Search with an undocumented query"),
		bindhttp.WithTags("query-metadata"))
	bindhttp.GET(r, "/path-validations/{item_id}", &handlers.TitledPathHandler{},
		bindhttp.WithSummary("Read an item with a titled path parameter"),
		bindhttp.WithTags("path-validation"))
	bindhttp.GET(r, "/path-ge/{item_id}", &handlers.BoundedPathHandler{},
		bindhttp.WithSummary("Read an item with a lower-bounded ID"),
		bindhttp.WithTags("path-validation"))
	bindhttp.GET(r, "/path-gt-le/{item_id}", &handlers.RangedPathHandler{},
		bindhttp.WithSummary("Read an item with a range-bounded ID"),
		bindhttp.WithTags("path-validation"))

	// Body parameters.
	bindhttp.POST(r, "/items/{$}", &handlers.CreateItemHandler{},
		bindhttp.WithSummary("Create an item"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/items/{item_id}", &handlers.UpdateItemHandler{},
		bindhttp.WithSummary("Update an item"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/multiple-body/{item_id}", &handlers.UpdateItemWithUserHandler{},
		bindhttp.WithSummary("Update an item with its user"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/singular-in-body/{item_id}", &handlers.UpdateImportantItemHandler{},
		bindhttp.WithSummary("Update an item with a singular importance value"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/embed-in-body/{item_id}", &handlers.UpdateEmbeddedItemHandler{},
		bindhttp.WithSummary("Update an item wrapped under its parameter name"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/body-field/{item_id}", &handlers.UpdateConstrainedItemHandler{},
		bindhttp.WithSummary("Update an item with field-level constraints"),
		bindhttp.WithTags("body"))
	bindhttp.PUT(r, "/nested-models/{item_id}", &handlers.UpdateNestedItemHandler{},
		bindhttp.WithSummary("Update an item with tags and an image"),
		bindhttp.WithTags("nested"))
	bindhttp.PUT(r, "/special-types/{item_id}", &handlers.UpdateStrictNestedItemHandler{},
		bindhttp.WithSummary("Update an item with a strictly-validated image"),
		bindhttp.WithTags("nested"))
	bindhttp.POST(r, "/offers/{$}", &handlers.CreateOfferHandler{},
		bindhttp.WithSummary("Create a deeply nested offer"),
		bindhttp.WithTags("nested"))
	bindhttp.POST(r, "/index-weights/{$}", &handlers.CreateIndexWeightsHandler{},
		bindhttp.WithSummary("Create integer-keyed index weights"),
		bindhttp.WithTags("nested"))

	return r
}
