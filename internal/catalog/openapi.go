package catalog

import "github.com/JaimeStill/load-planner/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Replace *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List products",
		Description: "Return every product in the catalog",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Catalog products",
				Content: map[string]*openapi.MediaType{
					"application/json": {
						Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Product")},
					},
				},
			},
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Replace: &openapi.Operation{
		Summary:     "Replace catalog",
		Description: "Replace the catalog with a JSON array of products. Every product is validated before the catalog is stored.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"application/json": {
					Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Product")},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Stored catalog",
				Content: map[string]*openapi.MediaType{
					"application/json": {
						Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Product")},
					},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Product": {
			Type:     "object",
			Required: []string{"product_id", "length", "breadth", "height"},
			Properties: map[string]*openapi.Schema{
				"product_id":      {Type: "string", Description: "Product identifier (numbers are accepted)"},
				"product_name":    {Type: "string"},
				"fragility_index": {Type: "integer", Description: "Each point pads every dimension by 2%"},
				"length":          {Type: "number"},
				"breadth":         {Type: "number"},
				"height":          {Type: "number"},
				"distance":        {Type: "number", Description: "Delivery distance; farther products load first"},
			},
		},
	}
}
