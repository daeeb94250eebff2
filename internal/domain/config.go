package domain

// DefaultPathVar names the environment variable that points at the env file.
const DefaultPathVar = "LAUNCHENV_FILE"

// Config represents the launchenv configuration loaded from launchenv.yaml.
type Config struct {
	Env    EnvConfig
	Launch LaunchConfig
}

type EnvConfig struct {
	// Var is the name looked up to find the env file path.
	Var string
}

type LaunchConfig struct {
	Name    string
	Program string
	Args    []string
	Cwd     string
	Profile string
}

// DefaultConfig provides defaults if launchenv.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Env: EnvConfig{Var: DefaultPathVar},
		Launch: LaunchConfig{
			Name:    "debug",
			Profile: ".launchenv/launch.yaml",
		},
	}
}

// LaunchProfile is the persisted launch configuration of a debug target.
type LaunchProfile struct {
	Name    string
	Program string
	Args    []string
	Cwd     string
	Env     []string
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
