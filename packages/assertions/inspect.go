package assertions

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"time"
)

// Inspect renders v for failure messages. Strings are quoted, errors show
// their quoted message, regular expressions are wrapped in slashes, funcs
// show their signature and composite values use Go syntax.
func Inspect(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	case error:
		if isNilPointer(val) {
			return fmt.Sprintf("(%T)(nil)", val)
		}
		return "error(" + strconv.Quote(val.Error()) + ")"
	case *regexp.Regexp:
		if val == nil {
			return "(*regexp.Regexp)(nil)"
		}
		return "/" + val.String() + "/"
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case reflect.Type:
		return val.String()
	case fmt.Stringer:
		if !isNilPointer(val) {
			return val.String()
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Func:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type())
		}
		return rv.Type().String()
	case reflect.Chan:
		return rv.Type().String()
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Pointer, reflect.Interface:
		if isCyclic(v) {
			return cyclicDumper.Sprintf("%v", v)
		}
		return fmt.Sprintf("%#v", v)
	}
	return fmt.Sprint(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
