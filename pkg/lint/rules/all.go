// Package rules registers all built-in lint rules.
//
// Import this package for its side effects to make every rule available
// in the registry:
//
//	import _ "github.com/leapstack-labs/spacelint/pkg/lint/rules"
package rules

import (
	// Register rule groups.
	_ "github.com/leapstack-labs/spacelint/pkg/lint/rules/spacing"
)
