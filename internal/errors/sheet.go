package errors

import "fmt"

// Metadata keys attached to sheet errors
const (
	MetaSlot  = "slot"
	MetaIndex = "index"
	MetaSize  = "size"
	MetaField = "field"
)

// SlotEmpty reports that nothing has been saved in slot
func SlotEmpty(slot string) *Error {
	return NotFoundf("slot %s is empty", slot).WithMeta(MetaSlot, slot)
}

// SlotUnreadable reports a saved payload that no longer decodes into a character
func SlotUnreadable(err error, slot string) *Error {
	return WrapWithCode(err, CodeDataLoss, fmt.Sprintf("slot %s holds an unreadable character", slot)).
		WithMeta(MetaSlot, slot)
}

// IndexOutOfRange reports a row position outside [0, size)
func IndexOutOfRange(what string, index, size int) *Error {
	return OutOfRangef("%s %d outside [0, %d)", what, index, size).
		WithMeta(MetaIndex, index).
		WithMeta(MetaSize, size)
}

// UnknownField reports a field key the sheet does not define
func UnknownField(key string) *Error {
	return InvalidArgumentf("unknown field %q", key).WithMeta(MetaField, key)
}

// IsAbsentSlot reports whether err means the slot has no usable character,
// either because it was never written or because its payload is unreadable.
func IsAbsentSlot(err error) bool {
	switch GetCode(err) {
	case CodeNotFound, CodeDataLoss:
		return true
	}
	return false
}
