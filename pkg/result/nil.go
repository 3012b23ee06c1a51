package result

import (
	"fmt"
	"reflect"
)

func isNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func mustNotBeNil(variant string, payload any) {
	if isNil(payload) {
		panic(fmt.Errorf("%w: %s called with nil %T", ErrNilPayload, variant, payload))
	}
}
