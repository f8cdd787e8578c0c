package openapi

import (
	"encoding/json"
	"net/http"
)

// NewSpec creates an empty OpenAPI 3.1 document.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// SetDescription sets the API description.
func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation records op under path for the given HTTP method.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// NewComponents creates Components with the shared error responses.
func NewComponents() *Components {
	errorBody := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"error": {Type: "string"},
		},
	}
	errorResponse := func(description string) *Response {
		return &Response{
			Description: description,
			Content: map[string]*MediaType{
				"application/json": {Schema: errorBody},
			},
		}
	}

	return &Components{
		Schemas: make(map[string]*Schema),
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Invalid request"),
			"NotFound":            errorResponse("Resource not found"),
			"Conflict":            errorResponse("Resource conflict"),
			"PayloadTooLarge":     errorResponse("Request body too large"),
			"InternalServerError": errorResponse("Internal server error"),
		},
	}
}

// AddSchemas merges schemas into the component registry.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that writes the pre-rendered document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
