package ports

// PathSource resolves the env file path from a named lookup (e.g., an environment variable).
type PathSource interface {
	Resolve(name string) (string, error)
}
