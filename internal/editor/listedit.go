package editor

import "errors"

var ErrIndexOutOfRange = errors.New("list index out of range")

// Every list field in the dashboard is edited the same way: append a
// placeholder, overwrite one element in place, or splice one out. Indices are
// positional; removing from the middle shifts everything after it.

func Append[T any](list []T, item T) []T {
	return append(list, item)
}

func ReplaceAt[T any](list []T, index int, item T) ([]T, error) {
	if index < 0 || index >= len(list) {
		return list, ErrIndexOutOfRange
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = item
	return out, nil
}

func RemoveAt[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return list, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out, nil
}
