package github

import (
	"github.com/google/jsonschema-go/jsonschema"
)

type SearchResponse struct {
	TotalCount int `json:"total_count"`

	IncompleteResults bool `json:"incomplete_results"`

	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	ID int64 `json:"id"`

	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// responseSchema lists the fields that must be present. Anything else the
// upstream sends is accepted and ignored.
var responseSchema = &jsonschema.Schema{
	Type: "object",

	Required: []string{"total_count", "items"},

	Properties: map[string]*jsonschema.Schema{
		"total_count": {
			Type:    "integer",
			Minimum: ptr(0.0),
		},

		"items": {
			Type: "array",

			Items: &jsonschema.Schema{
				Type: "object",

				Required: []string{"id", "title", "html_url"},

				Properties: map[string]*jsonschema.Schema{
					"id":       {Type: "integer"},
					"title":    {Type: "string"},
					"html_url": {Type: "string"},
				},
			},
		},
	},
}

func ptr[T any](v T) *T {
	return &v
}
