package plans

import "github.com/JaimeStill/load-planner/pkg/openapi"

type spec struct {
	Vehicle *openapi.Operation
	Pack    *openapi.Operation
	List    *openapi.Operation
	Find    *openapi.Operation
	Create  *openapi.Operation
	Delete  *openapi.Operation
}

var Spec = spec{
	Vehicle: &openapi.Operation{
		Summary:     "Submit vehicle",
		Description: "Validate vehicle cargo dimensions",
		RequestBody: openapi.RequestBodyJSON("Vehicle", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Dimensions accepted", "MessageResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Pack: &openapi.Operation{
		Summary:     "Pack catalog",
		Description: "Pack the current product catalog into the vehicle and store the plan",
		RequestBody: openapi.RequestBodyJSON("Vehicle", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Packed items", "PackResponse"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List plans",
		Description: "List stored plans with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in label", false),
			openapi.QueryParam("sort", "string", "Comma-separated fields, prefix with - for descending (e.g. -Utilization)", false),
			openapi.QueryParam("label", "string", "Filter by label (contains)", false),
			openapi.QueryParam("min_utilization", "number", "Minimum utilization ratio (0-1)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Plans list", "PlanPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find plan",
		Description: "Find plan by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Plan ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Plan details", "Plan"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create plan",
		Description: "Pack the current product catalog into the vehicle and return the stored plan",
		RequestBody: openapi.RequestBodyJSON("CreatePlanCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Plan created", "Plan"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseRef("InternalServerError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete plan",
		Description: "Delete a stored plan",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Plan ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Plan deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	dimensions := map[string]*openapi.Schema{
		"length":  {Type: "number"},
		"breadth": {Type: "number"},
		"height":  {Type: "number"},
	}

	return map[string]*openapi.Schema{
		"Vehicle": {
			Type:       "object",
			Required:   []string{"length", "breadth", "height"},
			Properties: dimensions,
		},
		"Dimensions": {
			Type:       "object",
			Properties: dimensions,
		},
		"Position": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"x": {Type: "number"},
				"y": {Type: "number"},
				"z": {Type: "number"},
			},
		},
		"Placement": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"product_id":      {Type: "string"},
				"product_name":    {Type: "string"},
				"fragility_index": {Type: "integer"},
				"adjusted_size":   openapi.SchemaRef("Dimensions"),
				"position":        openapi.SchemaRef("Position"),
			},
		},
		"Summary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total_products": {Type: "integer"},
				"packed_count":   {Type: "integer"},
				"unplaced_count": {Type: "integer"},
				"vehicle_volume": {Type: "number"},
				"packed_volume":  {Type: "number", Description: "Volume of padded products placed"},
				"utilization":    {Type: "number", Description: "Packed fraction of vehicle volume"},
			},
		},
		"Plan": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"label":      {Type: "string"},
				"vehicle":    openapi.SchemaRef("Vehicle"),
				"placements": {Type: "array", Items: openapi.SchemaRef("Placement")},
				"unplaced":   {Type: "array", Items: openapi.SchemaRef("Product")},
				"summary":    openapi.SchemaRef("Summary"),
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreatePlanCommand": {
			Type:     "object",
			Required: []string{"vehicle"},
			Properties: map[string]*openapi.Schema{
				"label":   {Type: "string", Description: "Optional display label"},
				"vehicle": openapi.SchemaRef("Vehicle"),
			},
		},
		"PackResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"plan_id":      {Type: "string", Format: "uuid"},
				"packed_items": {Type: "array", Items: openapi.SchemaRef("Placement")},
			},
		},
		"MessageResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message": {Type: "string", Example: VehicleAccepted},
			},
		},
		"PlanPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":         {Type: "array", Items: openapi.SchemaRef("Plan")},
				"total":        {Type: "integer"},
				"page":         {Type: "integer"},
				"page_size":    {Type: "integer"},
				"total_pages":  {Type: "integer"},
				"has_next":     {Type: "boolean"},
				"has_previous": {Type: "boolean"},
			},
		},
	}
}
