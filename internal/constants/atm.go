package constants

const (
	DefaultPin     = 1234
	DefaultBalance = 1000.0
	PinLength      = 4

	MinimumWithdrawal = 500.0
)

// Storage keys shared by every backend.
const (
	KeyPin     = "pin"
	KeyBalance = "balance"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

const (
	DefaultCurrency    = "INR"
	DefaultRedisPrefix = "atm"
)
