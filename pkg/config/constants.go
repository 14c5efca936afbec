package config

const (
	// EnvPrefix is intentionally empty; every field spells out its full
	// LEADROUTER_* variable name in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "LEADROUTER_DB_DSN"
	EnvDBHost = "LEADROUTER_DB_HOST"
	EnvDBUser = "LEADROUTER_DB_USER"
	EnvDBName = "LEADROUTER_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
