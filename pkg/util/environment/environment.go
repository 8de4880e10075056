package environment

import "todos-go-backend/config"

// Application environment names.
const (
	Development = config.Development
	Test        = config.Test
	E2E         = config.E2E
	Staging     = config.Staging
	Production  = config.Production
)

// IsDev reports whether the app runs locally or under test.
func IsDev(env string) bool {
	return env == Development || env == Test || env == E2E
}
