package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ToInt converts a decoded request field to an int. msgpack decodes integers
// into the narrowest type that holds them, and text clients send decimal strings.
func ToInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d overflows int", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", n)
		}
		return i, nil
	case nil:
		return 0, errors.New("missing integer")
	default:
		return 0, fmt.Errorf("invalid type for integer: %T", v)
	}
}

// ToString converts a decoded request field to a string. Integers are
// formatted in decimal so "RPUSH k 5" and a numeric value behave the same.
func ToString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case nil:
		return "", false
	}
	if i, err := ToInt(v); err == nil {
		return strconv.Itoa(i), true
	}
	return "", false
}
