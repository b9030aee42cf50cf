package generator

import "strings"

const notSpecified = "Not specified"

// Brief describes the entrepreneur the ideas are generated for.
type Brief struct {
	Budget         string
	Skills         string
	Interests      string
	Location       string
	TimeCommitment string
	Markets        []string
}

func (b Brief) timeCommitment() string {
	if strings.TrimSpace(b.TimeCommitment) == "" {
		return notSpecified
	}
	return b.TimeCommitment
}

func (b Brief) markets() string {
	var kept []string
	for _, m := range b.Markets {
		if m = strings.TrimSpace(m); m != "" {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return notSpecified
	}
	return strings.Join(kept, ", ")
}
