package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDomain is returned by DomainByName for unsupported names.
var ErrUnknownDomain = errors.New("unknown description domain")

// Domain selects the container class (and default template heading)
// for a description. The normalizer algorithm is identical for all domains.
type Domain struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	AboutHeading string `json:"-"`
}

var (
	JobDomain = Domain{
		Name:         "job",
		Class:        "job-description",
		AboutHeading: "About the Role",
	}
	ProductDomain = Domain{
		Name:         "product",
		Class:        "product-description",
		AboutHeading: "About this Product",
	}
)

// DomainByName resolves "job" or "product" (case-insensitive).
func DomainByName(name string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case JobDomain.Name:
		return JobDomain, nil
	case ProductDomain.Name:
		return ProductDomain, nil
	default:
		return Domain{}, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
	}
}
