package constants

const (
	// EnvPrefix prefixes every environment variable bound to a command line flag,
	// e.g. ROUTELEAK_PASSWORD or ROUTELEAK_VRF_CREATE_RD.
	EnvPrefix = "ROUTELEAK"

	// EnvFile is the dotenv file read from the working directory before flags are bound.
	EnvFile = ".env"
)
