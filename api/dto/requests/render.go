// ABOUTME: Request DTOs for the document rendering endpoint
// ABOUTME: Carries the markup to enrich and optional scanning overrides

package requests

import "strings"

// MaxDocumentSize caps the markup accepted in one render request
const MaxDocumentSize = 2 << 20

// RenderRequest is the body of POST /render
type RenderRequest struct {
	// HTML is the document or fragment to enrich
	HTML string `json:"html" minLength:"1" maxLength:"2097152" doc:"HTML document or fragment containing tagged elements"`

	// Class overrides the tag class for this request
	Class string `json:"class,omitempty" maxLength:"64" pattern:"^[A-Za-z_][A-Za-z0-9_-]*$" doc:"Class marking elements with scripture references"`

	// Fragment returns only the body contents instead of a full document
	Fragment bool `json:"fragment,omitempty" doc:"Treat html as a fragment and return only the body contents"`
}

// ApplyDefaults fills the tag class when the request leaves it empty
func (r *RenderRequest) ApplyDefaults(defaultClass string) {
	r.Class = strings.TrimSpace(r.Class)
	if r.Class == "" {
		r.Class = defaultClass
	}
}
