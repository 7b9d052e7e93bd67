// Package mocks provides testify mocks of the repository and service interfaces.
package mocks

import mock "github.com/stretchr/testify/mock"

// returnValue reads the i-th configured return value, tolerating untyped nil.
func returnValue[T any](args mock.Arguments, i int) T {
	var zero T
	v := args.Get(i)
	if v == nil {
		return zero
	}
	return v.(T)
}
