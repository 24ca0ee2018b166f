package api

import (
	"context"
	"encoding/json"

	"github.com/qri-io/jsonschema"
)

// Create payloads are validated against JSON Schemas compiled at package
// init, producing field-level errors instead of scattering checks across
// handlers. Patch payloads stay pointer-struct decoded (absent vs zero must
// remain distinguishable), with enum checks in the handlers.

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic("invalid embedded schema: " + err.Error())
	}

	return rs
}

// validateBody returns field-level errors keyed by property path, or a
// non-nil error when the body is not valid JSON at all.
func validateBody(ctx context.Context, rs *jsonschema.Schema, body []byte) (map[string]string, error) {
	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(keyErrs) == 0 {
		return nil, nil
	}

	details := make(map[string]string, len(keyErrs))
	for _, ke := range keyErrs {
		details[ke.PropertyPath] = ke.Message
	}

	return details, nil
}

var attorneyCreateSchema = mustSchema(`{
	"type": "object",
	"required": ["name", "title", "specialty", "email", "bio"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1},
		"specialty": {"type": "string", "minLength": 1},
		"education": {"type": "array", "items": {"type": "string"}},
		"experience": {"type": "string"},
		"email": {"type": "string", "minLength": 3},
		"phone": {"type": "string"},
		"profileUrl": {"type": "string"},
		"photo": {"type": "string"},
		"bio": {"type": "string", "minLength": 1},
		"practiceAreas": {"type": "array", "items": {"type": "string"}},
		"barAdmissions": {"type": "array", "items": {"type": "string"}},
		"languages": {"type": "array", "items": {"type": "string"}},
		"status": {"type": "string", "enum": ["active", "inactive"]},
		"order": {"type": "integer"}
	}
}`)

var blogCreateSchema = mustSchema(`{
	"type": "object",
	"required": ["title", "excerpt", "content", "category", "author"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"excerpt": {"type": "string", "minLength": 1},
		"content": {"type": "string", "minLength": 1},
		"thumbnail": {"type": "string"},
		"category": {"type": "string", "minLength": 1},
		"author": {"type": "string", "minLength": 1},
		"status": {"type": "string", "enum": ["draft", "published"]}
	}
}`)

var practiceAreaCreateSchema = mustSchema(`{
	"type": "object",
	"required": ["title", "description", "content"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"content": {"type": "string", "minLength": 1},
		"image": {"type": "string"},
		"icon": {"type": "string"},
		"status": {"type": "string", "enum": ["active", "inactive"]},
		"order": {"type": "integer"}
	}
}`)

var serviceCreateSchema = mustSchema(`{
	"type": "object",
	"required": ["title", "description", "content", "category"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"content": {"type": "string", "minLength": 1},
		"image": {"type": "string"},
		"icon": {"type": "string"},
		"category": {"type": "string", "minLength": 1},
		"features": {"type": "array", "items": {"type": "string"}},
		"status": {"type": "string", "enum": ["active", "inactive"]},
		"order": {"type": "integer"}
	}
}`)

var contactCreateSchema = mustSchema(`{
	"type": "object",
	"required": ["name", "email", "inquiryType", "message"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "minLength": 3},
		"phone": {"type": "string"},
		"inquiryType": {"type": "string", "minLength": 1},
		"message": {"type": "string", "minLength": 1, "maxLength": 5000}
	}
}`)
