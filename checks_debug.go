//go:build !ecsrelease

package ecs

// checksEnabled gates the Get access checks (NoStoreError,
// InvalidEntityError, MissingComponentError). The default build keeps them
// on; build with -tags ecsrelease to compile them out for hot loops that
// guarantee the contract themselves.
const checksEnabled = true
