package outcome

import "reflect"

// isNil reports whether err is nil, including a nil pointer stored in a
// non-nil error interface.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
