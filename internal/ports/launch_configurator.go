package ports

// LaunchConfigurator receives the environment a debug target must start with.
//
// entries are rendered KEY=VALUE strings in file order. When replaceExisting is
// true the entries fully replace any environment the configurator already holds.
type LaunchConfigurator interface {
	SetEnvironment(entries []string, replaceExisting bool) error
}
