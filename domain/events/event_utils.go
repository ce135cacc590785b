package events

import "reflect"

// ExtractState pulls the State field out of an event, for handlers that treat
// every state-carrying event the same way
func ExtractState(event Event) (TableSnapshot, bool) {
	val := reflect.ValueOf(event)

	// If it's a pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		state := val.FieldByName("State")
		if state.IsValid() && state.Type() == reflect.TypeOf(TableSnapshot{}) {
			return state.Interface().(TableSnapshot), true
		}
	}

	return TableSnapshot{}, false
}
