// Package environments enumerates the deployment environments selected by
// APP_ENV. Unknown values fall back to production behavior.
package environments

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Staging     Environment = "staging"
	Test        Environment = "test"
)
