//go:build ecsrelease

package ecs

// Release build: Get performs raw lookups with no contract checks. A miss
// returns the zero value, not an error.
const checksEnabled = false
