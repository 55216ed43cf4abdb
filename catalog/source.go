package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Source wraps one JSON object from the search response. Every accessor
// reports whether the path held a value of the expected JSON type; a
// missing path, a null and a value of another type all read as absent.
type Source struct {
	data gjson.Result
}

// StringForPath returns the JSON string at path.
func (s Source) StringForPath(path string) (string, bool) {
	result := s.data.Get(path)
	return result.Str, result.Type == gjson.String
}

// IntForPath returns the whole number at path. Fractional numbers and
// numbers outside the int64 range read as absent.
func (s Source) IntForPath(path string) (int64, bool) {
	result := s.data.Get(path)
	if result.Type != gjson.Number {
		return 0, false
	}
	if !strings.ContainsAny(result.Raw, ".eE") {
		n, err := strconv.ParseInt(result.Raw, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	f := result.Float()
	// 2^63 is exact as a float64, anything at or above it overflows
	if f != math.Trunc(f) || f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// FloatForPath returns the number at path.
func (s Source) FloatForPath(path string) (float64, bool) {
	result := s.data.Get(path)
	return result.Float(), result.Type == gjson.Number
}

// BoolForPath returns the JSON boolean at path.
func (s Source) BoolForPath(path string) (bool, bool) {
	result := s.data.Get(path)
	return result.Bool(), result.Type == gjson.True || result.Type == gjson.False
}

// RawForPath returns the raw JSON text at path, for values kept opaque.
func (s Source) RawForPath(path string) (string, bool) {
	result := s.data.Get(path)
	return result.Raw, result.Exists() && result.Type != gjson.Null
}

// ObjectForPath returns the object at path as a Source.
func (s Source) ObjectForPath(path string) (Source, bool) {
	result := s.data.Get(path)
	if !result.IsObject() {
		return Source{}, false
	}
	return Source{data: result}, true
}

// ObjectsForPath returns the objects held in the array at path. Elements
// that are not objects are skipped.
func (s Source) ObjectsForPath(path string) ([]Source, bool) {
	result := s.data.Get(path)
	if !result.IsArray() {
		return nil, false
	}
	var objects []Source
	for _, v := range result.Array() {
		if v.IsObject() {
			objects = append(objects, Source{data: v})
		}
	}
	return objects, true
}

func (s Source) optionalString(path string) Optional[string] {
	if v, ok := s.StringForPath(path); ok {
		return Some(v)
	}
	return None[string]()
}

func (s Source) optionalInt(path string) Optional[int64] {
	if v, ok := s.IntForPath(path); ok {
		return Some(v)
	}
	return None[int64]()
}

func (s Source) optionalFloat(path string) Optional[float64] {
	if v, ok := s.FloatForPath(path); ok {
		return Some(v)
	}
	return None[float64]()
}

func (s Source) optionalBool(path string) Optional[bool] {
	if v, ok := s.BoolForPath(path); ok {
		return Some(v)
	}
	return None[bool]()
}

func (s Source) optionalRaw(path string) Optional[string] {
	if v, ok := s.RawForPath(path); ok {
		return Some(v)
	}
	return None[string]()
}
