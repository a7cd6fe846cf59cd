package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9-]*$`)

// assetVersion is the newest envelope schema this build reads.
const assetVersion = 1

type ValidatingSpec interface {
	Validate() error
}

// Identifier is the key an asset is stored under. Item identifiers are
// numeric strings; building blocks and other structures use lowercase
// hyphenated names (e.g. "sheet-metal-wall").
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	switch {
	case a.Version == 0:
		el.Add(fmt.Errorf("version must be set"))
	case a.Version > assetVersion:
		el.Add(fmt.Errorf("version %d is newer than this build supports", a.Version))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id must be lowercase alphanumeric"))
	}

	if err := a.Spec.Validate(); err != nil {
		el.Add(fmt.Errorf("spec: %w", err))
	}

	return el.Err()
}
