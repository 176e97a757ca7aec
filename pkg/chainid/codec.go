package chainid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/evmkit/chain-resolver/pkg/chains"
)

// The wire form is an untagged scalar: named chains encode as their lowercase
// canonical name, unrecognized ids as a plain unsigned integer. Decoding
// accepts either shape and re-normalizes integers, so decode(encode(x)) == x.

// MarshalJSON encodes the identifier as a string or an integer scalar.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.named {
		return json.Marshal(id.String())
	}
	return json.Marshal(id.num)
}

// UnmarshalJSON decodes a string chain name or an integer chain id. String
// input must match a registered name; integer input is accepted as-is and
// normalized through FromUint64. Any other scalar shape is a decode error.
func (id *ID) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c, ok := chains.Parse(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
		*id = FromChain(c)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FromUint64(n)
	return nil
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse, so the type
// slots into flag values and text-keyed decoders.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML mirrors the JSON wire form.
func (id ID) MarshalYAML() (interface{}, error) {
	if id.named {
		return id.String(), nil
	}
	return id.num, nil
}

// UnmarshalYAML accepts an integer or string scalar node.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	var n uint64
	if err := node.Decode(&n); err == nil {
		*id = FromUint64(n)
		return nil
	}
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
