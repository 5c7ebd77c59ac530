package req

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

// A Parser decodes request payloads into structs and validates them.
//
// A *Parser is safe for concurrent use.
type Parser struct {
	decoder *schema.Decoder
	validator
}

// NewParser constructs a *Parser ignoring payload keys absent from the target struct.
func NewParser() *Parser {
	return &Parser{
		decoder:   newDecoder(),
		validator: newValidator(),
	}
}

// ParseForm decodes into a pointer to a struct the url-encoded form in the *http.Request body.
// If successful, ParseForm runs validation against the contents,
// returning ValidationErrors, which wrap wanderlust.ErrNotValid, if the data fails validation rules.
//
// Fields are matched by "schema" struct tags.
func (p *Parser) ParseForm(r *http.Request, structPtr any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("wanderlust/http/req: failed parsing form: %w", translateDecoderError(err))
	}

	return p.parse(r.PostForm, structPtr)
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning ValidationErrors if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	return p.parse(params, structPtr)
}

func (p *Parser) parse(vals url.Values, structPtr any) error {
	if err := p.decoder.Decode(structPtr, vals); err != nil {
		return fmt.Errorf("wanderlust/http/req: failed decoding values: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("wanderlust/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
