// Package domain contains the core model for launchenv.
//
// The domain is host-agnostic: it does not depend on the filesystem, process
// environment, YAML, or any debugger API. Infra adapters map into/from these types.
package domain
