package dto

import (
	"bytes"
	"encoding/json"

	"helloteam.app/api/common/id"
)

// ID is an int64 id that accepts a JSON number or a decimal string. It is
// written as a string so javascript clients keep full precision.
type ID int64

func (i *ID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*i = 0
		return nil
	}
	v, err := id.Parse(string(b))
	if err != nil {
		return err
	}
	*i = ID(v)
	return nil
}

func (i ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String(int64(i)))
}

// Ptr returns nil for a missing id.
func (i *ID) Ptr() *int64 {
	if i == nil || *i == 0 {
		return nil
	}
	v := int64(*i)
	return &v
}

func Int64s(ids []ID) []int64 {
	out := make([]int64, len(ids))
	for n, v := range ids {
		out[n] = int64(v)
	}
	return out
}
