package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var openAPISpec []byte

// GetSwagger parses the embedded OpenAPI document. Used by the docs
// endpoint and by tests that check route coverage against the contract.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	spec, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}

	return spec, nil
}
