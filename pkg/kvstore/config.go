package kvstore

// Driver names accepted in configuration.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverDisabled = "disabled"
)

// DefaultQuota mirrors the common 5 MiB per-origin browser allowance.
const DefaultQuota int64 = 5 << 20

// DefaultOrigin is used when no origin is configured.
const DefaultOrigin = "http://localhost"
