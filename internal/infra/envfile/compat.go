package envfile

import (
	"strings"

	"github.com/hashicorp/go-envparse"

	"github.com/aalvaropc/launchenv/internal/domain"
)

// CompatIssue flags an assignment that a conventional dotenv parser would read
// differently from the verbatim value launchenv hands to the launch target.
type CompatIssue struct {
	Key    string
	Value  string
	Dotenv string
	Err    error
}

func (i CompatIssue) String() string {
	if i.Err != nil {
		return i.Key + ": dotenv parsers reject this line: " + i.Err.Error()
	}
	return i.Key + ": value is passed verbatim as " + quote(i.Value) + ", dotenv parsers read " + quote(i.Dotenv)
}

// CheckCompat reports assignments whose meaning depends on the parser.
// Quotes, escapes and inline comments are the usual culprits.
func CheckCompat(list domain.EnvAssignmentList) []CompatIssue {
	var issues []CompatIssue
	for _, a := range list {
		parsed, err := envparse.Parse(strings.NewReader(a.String() + "\n"))
		if err != nil {
			issues = append(issues, CompatIssue{Key: a.Key, Value: a.Value, Err: err})
			continue
		}
		if got, ok := parsed[a.Key]; !ok || got != a.Value {
			issues = append(issues, CompatIssue{Key: a.Key, Value: a.Value, Dotenv: got})
		}
	}
	return issues
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}
