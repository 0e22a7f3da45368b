// Package mocks provides hand-written test doubles for the store and
// auth service interfaces, used by handler and middleware tests.
package mocks
