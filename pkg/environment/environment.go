// Package environment names the deployment environments the binaries know about.
package environment

import "strings"

// Environment is a deployment environment name.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a configured value, including the short aliases "dev", "stage"
// and "prod", to an Environment. Unknown values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) String() string { return string(e) }
