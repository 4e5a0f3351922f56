package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin/binding"
)

// Normalizer is implemented by request bodies that clean up their fields
// before the binding tags are checked.
type Normalizer interface {
	Normalize()
}

// JSON decodes like binding.JSON, then normalizes the target and validates
// it, so the rules see the same values that get stored.
var JSON binding.BindingBody = normalizedJSON{}

type normalizedJSON struct{}

func (normalizedJSON) Name() string {
	return "json"
}

func (normalizedJSON) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errors.New("invalid request")
	}
	return decodeAndValidate(req.Body, obj)
}

func (normalizedJSON) BindBody(body []byte, obj any) error {
	return decodeAndValidate(bytes.NewReader(body), obj)
}

func decodeAndValidate(r io.Reader, obj any) error {
	if err := json.NewDecoder(r).Decode(obj); err != nil {
		return err
	}
	if n, ok := obj.(Normalizer); ok {
		n.Normalize()
	}
	return binding.Validator.ValidateStruct(obj)
}
