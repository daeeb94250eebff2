package usecase

import (
	"context"

	"github.com/aalvaropc/launchenv/internal/domain"
	"github.com/aalvaropc/launchenv/internal/infra/envfile"
)

// CheckReport is the outcome of checking an env file.
type CheckReport struct {
	Environment domain.Environment
	Issues      []envfile.CompatIssue
	// Duplicates lists keys assigned more than once, in first-seen order.
	Duplicates []string
}

type CheckEnvFile struct {
	apply *ApplyEnvironment
}

func NewCheckEnvFile(apply *ApplyEnvironment) *CheckEnvFile {
	return &CheckEnvFile{apply: apply}
}

// Execute parses the env file and reports dotenv portability warnings and
// repeated keys. Format errors fail the check; warnings do not.
func (uc *CheckEnvFile) Execute(ctx context.Context, src Source) (CheckReport, error) {
	env, err := uc.apply.Load(ctx, src)
	if err != nil {
		return CheckReport{}, err
	}
	return CheckReport{
		Environment: env,
		Issues:      envfile.CheckCompat(env.Entries),
		Duplicates:  duplicateKeys(env.Entries.Keys()),
	}, nil
}

func duplicateKeys(keys []string) []string {
	seen := make(map[string]int, len(keys))
	var out []string
	for _, k := range keys {
		seen[k]++
		if seen[k] == 2 {
			out = append(out, k)
		}
	}
	return out
}
