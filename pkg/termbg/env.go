package termbg

import "os"

// Env is a read-only view of environment variables.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv reads the process environment.
type OSEnv struct{}

// LookupEnv implements Env.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is a fixed environment, handy for tests and for callers that want to
// describe a terminal other than their own.
type MapEnv map[string]string

// LookupEnv implements Env.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func hasEnv(env Env, key string) bool {
	_, ok := env.LookupEnv(key)
	return ok
}

func getEnv(env Env, key string) string {
	v, _ := env.LookupEnv(key)
	return v
}
