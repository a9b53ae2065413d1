package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var specYAML []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error

	swaggerOnce sync.Once
	swaggerErr  error
)

// GetSwagger parses and validates the embedded OpenAPI document. The result
// is cached; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(specYAML)
		if err != nil {
			specErr = fmt.Errorf("loading openapi document: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			specErr = fmt.Errorf("validating openapi document: %w", err)
			return
		}
		spec = doc
	})
	return spec, specErr
}

// RegisterSwaggerDoc publishes the document in the swag registry under the
// default instance name, where echo-swagger looks it up. Only the first call
// registers; swag panics on duplicates.
func RegisterSwaggerDoc() error {
	swaggerOnce.Do(func() {
		swaggerErr = registerSwaggerDoc()
	})
	return swaggerErr
}

func registerSwaggerDoc() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	swag.Register(swag.Name, &swag.Spec{
		Version:          doc.Info.Version,
		Title:            doc.Info.Title,
		Description:      doc.Info.Description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(raw),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	})
	return nil
}
