package wsUsecase

import (
	"encoding/json"
	"math"
)

// LooseString decodes a JSON string as is and anything else as "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = LooseString(v)
	return nil
}

// NoChoice is never a valid answer index.
const NoChoice ChoiceIndex = -1

// ChoiceIndex accepts any JSON number with an integral value, so 1 and 1.0
// select the same choice. Fractions, strings, booleans and null decode as
// NoChoice.
type ChoiceIndex int

func (c *ChoiceIndex) UnmarshalJSON(data []byte) error {
	*c = NoChoice

	var f float64
	if err := json.Unmarshal(data, &f); err != nil || string(data) == "null" {
		return nil
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	*c = ChoiceIndex(f)
	return nil
}
