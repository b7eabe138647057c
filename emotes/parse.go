package emotes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrSchema is returned when a payload decodes but fails schema validation.
var ErrSchema = errors.New("emote set payload failed schema validation")

var validate = validator.New()

// ParseSet decodes and validates an emote-set payload. It is decoupled from
// transport so hosts can feed it bodies from any source.
func ParseSet(data []byte) (*Set, error) {
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to decode emote set payload: %w", err)
	}
	if err := validate.Struct(&set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return &set, nil
}
