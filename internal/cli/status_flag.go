package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/tfauvel/diptrack/internal/domain"
)

// statusFlag is a pflag.Value that validates a proposal status as it is
// parsed, so bad values fail at flag-parse time with the full list of
// accepted statuses.
type statusFlag struct {
	status domain.ProposalStatus
	set    bool
}

var _ pflag.Value = (*statusFlag)(nil)

func (f *statusFlag) String() string {
	return string(f.status)
}

func (f *statusFlag) Set(raw string) error {
	s, err := domain.ParseStatus(raw)
	if err != nil {
		return err
	}
	f.status = s
	f.set = true
	return nil
}

func (f *statusFlag) Type() string {
	return "status (" + strings.Join(domain.StatusNames(), "|") + ")"
}
