// parser.go
package brew

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodePackages decodes an array-mode brew info --json=v1 payload. The input
// order is preserved. Any schema mismatch yields a *ParseError and no records.
func decodePackages(data []byte) ([]*Package, error) {
	// encoding/json maps a top-level null (or empty input) to a nil slice
	// without error; require an actual array before decoding.
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, &ParseError{Err: fmt.Errorf("expected a JSON array")}
	}

	var packages []*Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, &ParseError{Err: err}
	}

	for i, p := range packages {
		if p == nil {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: null formula object", i)}
		}
		if p.Name == "" {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: missing required field \"name\"", i)}
		}
	}
	return packages, nil
}

// decodePackage decodes a single-formula payload. brew wraps one formula in
// an array as well, so this takes the first element of array mode. An empty
// array means brew matched no formula.
func decodePackage(data []byte) (*Package, error) {
	packages, err := decodePackages(data)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, ErrPackageNotFound
	}
	return packages[0], nil
}
