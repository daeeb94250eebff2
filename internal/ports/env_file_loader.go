package ports

import "github.com/aalvaropc/launchenv/internal/domain"

// EnvFileLoader parses an env file into ordered assignments.
type EnvFileLoader interface {
	Load(path string) (domain.EnvAssignmentList, error)
}
