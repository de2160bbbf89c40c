package utils

import "encoding/json"

// MarshalJSON serializes a value for caching
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON deserializes a cached value
func UnmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
