package config

type yamlConfig struct {
	Launchenv struct {
		Env struct {
			Var string `yaml:"var"`
		} `yaml:"env"`

		Launch struct {
			Name    string   `yaml:"name"`
			Program string   `yaml:"program"`
			Args    []string `yaml:"args"`
			Cwd     string   `yaml:"cwd"`
			Profile string   `yaml:"profile"`
		} `yaml:"launch"`
	} `yaml:"launchenv"`
}
