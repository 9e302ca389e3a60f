// File: validate.go
// Role: Validation of user-entered edge input before it reaches AddEdge.
//
// Taxonomy:
//   - Invalid input (missing/non-numeric weight, missing or identical endpoints,
//     unknown endpoint) is rejected with a sentinel; nothing is mutated.
//   - A negative weight is accepted but flagged via EdgeInput.Negative.

package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for edge input validation.
var (
	// ErrMissingWeight indicates the weight field was empty.
	ErrMissingWeight = errors.New("core: edge weight is required")

	// ErrWeightNotNumeric indicates the weight could not be parsed as a finite number.
	ErrWeightNotNumeric = errors.New("core: edge weight must be a number")

	// ErrMissingEndpoint indicates From or To was not chosen.
	ErrMissingEndpoint = errors.New("core: edge endpoints are required")

	// ErrSameNode indicates From and To are the same node.
	ErrSameNode = errors.New("core: edge endpoints must differ")

	// ErrEndpointNotFound indicates From or To does not exist in the graph.
	ErrEndpointNotFound = errors.New("core: edge endpoint not found")
)

// EdgeInput is a validated edge request.
type EdgeInput struct {
	From   string
	To     string
	Weight float64

	// Negative is advisory: the edge is valid, but shortest-path results that
	// depend on it are not guaranteed to be correct.
	Negative bool
}

// edgeForm mirrors the raw form fields. Field order sets error priority:
// the weight is checked before the endpoints.
type edgeForm struct {
	Weight string `validate:"required,weight"`
	From   string `validate:"required"`
	To     string `validate:"required,nefield=From"`
}

var edgeValidate = newEdgeValidator()

func newEdgeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("weight", func(fl validator.FieldLevel) bool {
		_, err := parseWeight(fl.Field().String())

		return err == nil
	})

	return v
}

// ParseEdgeInput validates raw edge form input without consulting any graph.
//
// Errors (first failing rule wins, in this order):
//   - ErrMissingWeight, ErrWeightNotNumeric
//   - ErrMissingEndpoint, ErrSameNode
func ParseEdgeInput(from, to, weightText string) (EdgeInput, error) {
	form := edgeForm{
		Weight: strings.TrimSpace(weightText),
		From:   strings.TrimSpace(from),
		To:     strings.TrimSpace(to),
	}
	if err := edgeValidate.Struct(form); err != nil {
		return EdgeInput{}, translateEdgeError(err)
	}

	w, _ := parseWeight(form.Weight)

	return EdgeInput{From: form.From, To: form.To, Weight: w, Negative: w < 0}, nil
}

// CheckEdgeInput validates raw edge form input and additionally requires both
// endpoints to exist in g.
//
// Errors:
//   - everything ParseEdgeInput returns
//   - ErrEndpointNotFound
func (g *Graph) CheckEdgeInput(from, to, weightText string) (EdgeInput, error) {
	in, err := ParseEdgeInput(from, to, weightText)
	if err != nil {
		return EdgeInput{}, err
	}
	for _, id := range []string{in.From, in.To} {
		if !g.HasNode(id) {
			return EdgeInput{}, fmt.Errorf("%w: %q", ErrEndpointNotFound, id)
		}
	}

	return in, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, strconv.ErrRange
	}

	return w, nil
}

func translateEdgeError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "Weight" && fe.Tag() == "required":
		return ErrMissingWeight
	case fe.Field() == "Weight":
		return fmt.Errorf("%w: %q", ErrWeightNotNumeric, fe.Value())
	case fe.Tag() == "nefield":
		return ErrSameNode
	default:
		return fmt.Errorf("%w: %s", ErrMissingEndpoint, strings.ToLower(fe.Field()))
	}
}
