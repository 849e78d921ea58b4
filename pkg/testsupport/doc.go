// Package testsupport holds helpers shared by package tests: sheet fixtures,
// a static item lookup and JSON golden files.
package testsupport
