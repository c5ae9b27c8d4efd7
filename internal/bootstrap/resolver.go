// Package bootstrap seeds the process environment with secret values before
// the rest of the application reads its configuration. It runs once per
// process startup and holds no state across invocations.
package bootstrap

// EnvironmentResolver determines which logical environment name the process
// is running under (e.g. "production", "staging").
type EnvironmentResolver struct {
	Override string // Override is the value of the --env flag, if supplied
	Console  bool   // Console reports whether the process runs in an interactive console context
	Ambient  string // Ambient is the environment name from ambient configuration (APP_ENV)
}

// Resolve returns the explicit console override when one was supplied,
// otherwise the ambient environment name. An empty result is not an error; it
// simply fails the allow-list check downstream.
func (r EnvironmentResolver) Resolve() string {
	if r.Console && r.Override != "" {
		return r.Override
	}

	return r.Ambient
}
