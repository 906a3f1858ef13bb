// Package testutil provides small helpers shared by the test suites.
package testutil
