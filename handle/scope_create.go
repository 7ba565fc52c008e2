package handle

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/keeper/handle/internal/utils"
	"golang.org/x/exp/slog"
)

// ScopeCreateFlags indicate specific scope behaviors to activate or deactivate
type ScopeCreateFlags int32

var scopeCreateFlagsMapping = common.NewFlagStringMapping[ScopeCreateFlags]()

func (f ScopeCreateFlags) Register(str string) {
	scopeCreateFlagsMapping.Register(f, str)
}
func (f ScopeCreateFlags) String() string {
	return scopeCreateFlagsMapping.FlagsToString(f)
}

const (
	// ScopeCreateExternallySynchronized ensures that the scope will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time or is synchronized
	// by some other mechanism.
	ScopeCreateExternallySynchronized ScopeCreateFlags = 1 << iota
	// ScopeCreateLogReleases causes the scope to log, at Info level, every live handle it releases
	// during Destroy. This is useful for tracking down resources that were expected to have been
	// released earlier.
	ScopeCreateLogReleases
)

func init() {
	ScopeCreateExternallySynchronized.Register("ScopeCreateExternallySynchronized")
	ScopeCreateLogReleases.Register("ScopeCreateLogReleases")
}

// ScopeCreateOptions contains optional settings when creating a Scope
type ScopeCreateOptions struct {
	// Flags indicates specific scope behaviors to activate or deactivate
	Flags ScopeCreateFlags
}

// NewScope creates a new, empty Scope
//
// logger - Receives teardown diagnostics. May be nil.
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewScope(logger *slog.Logger, options ScopeCreateOptions) *Scope {
	return &Scope{
		mutex: utils.OptionalMutex{
			UseMutex: options.Flags&ScopeCreateExternallySynchronized == 0,
		},
		logger: defaultLogger(logger),
		flags:  options.Flags,
	}
}
