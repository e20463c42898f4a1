package transit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// errBadField marks a value that is present but structurally wrong (an
// object where a scalar belongs, a boolean delay, ...). A record carrying
// one is considered corrupt and is dropped as a whole.
var errBadField = errors.New("unexpected field type")

// fieldPath is one accessor attempt: a chain of object keys to descend.
type fieldPath []string

func (p fieldPath) String() string { return strings.Join(p, ".") }

// lookupPath walks raw along path. The second return is false when any key
// on the path is absent or null. An intermediate value that is not an
// object wraps errBadField.
func lookupPath(raw RawDeparture, path fieldPath) (any, bool, error) {
	cur := any(map[string]any(raw))
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false, fmt.Errorf("%w: %s is not an object", errBadField, fieldPath(path[:i]))
		}
		v, present := m[key]
		if !present || v == nil {
			return nil, false, nil
		}
		cur = v
	}
	return cur, true, nil
}

// resolveString tries each path in order and returns the first usable
// value, or fallback when none of them is present. Numbers are accepted
// and formatted, since some deployments send platform numbers unquoted.
func resolveString(raw RawDeparture, fallback string, paths ...fieldPath) (string, error) {
	for _, p := range paths {
		v, ok, err := lookupPath(raw, p)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if s == "" {
				continue
			}
			return s, nil
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64), nil
		default:
			return "", fmt.Errorf("%w: %s is not a string", errBadField, p)
		}
	}
	return fallback, nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// resolveTime tries each path in order and parses the first present value
// as an absolute timestamp, keeping the offset the source supplied. A
// string that parses under no known layout is treated as absent.
func resolveTime(raw RawDeparture, paths ...fieldPath) (time.Time, bool, error) {
	for _, p := range paths {
		v, ok, err := lookupPath(raw, p)
		if err != nil {
			return time.Time{}, false, err
		}
		if !ok {
			continue
		}
		s, isString := v.(string)
		if !isString {
			return time.Time{}, false, fmt.Errorf("%w: %s is not a timestamp string", errBadField, p)
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true, nil
			}
		}
	}
	return time.Time{}, false, nil
}

// resolveDelaySeconds reads the explicit delay field, in seconds. The API
// sends it as a JSON number, but numeric strings are accepted too. A
// present but non-numeric string counts as zero delay rather than falling
// through to time-difference derivation.
func resolveDelaySeconds(raw RawDeparture) (int, bool, error) {
	v, ok, err := lookupPath(raw, fieldPath{"delay"})
	if err != nil || !ok {
		return 0, ok, err
	}
	switch d := v.(type) {
	case float64:
		return int(d), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, true, nil
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%w: delay is not numeric", errBadField)
	}
}
