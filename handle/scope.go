package handle

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/keeper/handle/internal/utils"
	"github.com/vkngwrapper/keeper/keeputils"
	"golang.org/x/exp/slog"
)

var (
	// ErrScopeDestroyed is returned when adopting into a Scope that has already been destroyed
	ErrScopeDestroyed = errors.New("scope has already been destroyed")
	// ErrDuplicateHandle is returned when two owners in one Scope would hold the same native handle
	ErrDuplicateHandle = errors.New("handle is already owned")
	// ErrNilOwner is returned when adopting a nil Resource
	ErrNilOwner = errors.New("cannot adopt a nil owner")
)

// Scope releases a group of owners in the reverse of the order they were adopted, so resources
// created from a parent (a swapchain from a device, a device from an instance) are always torn
// down before that parent.
type Scope struct {
	mutex  utils.OptionalMutex
	logger *slog.Logger
	flags  ScopeCreateFlags

	resources []Resource
	destroyed bool
}

// Own creates an Owner for handle and adopts it into scope. If adoption fails, the handle is not
// released and remains the caller's responsibility.
func Own[T comparable](scope *Scope, kind Kind, handle T, release ReleaseFunc[T]) (*Owner[T], error) {
	owner := New[T](scope.logger, kind, handle, release)
	err := scope.Adopt(owner)
	if err != nil {
		owner.Detach()
		return nil, err
	}

	return owner, nil
}

// Adopt places resource under this Scope's teardown. Empty owners may be adopted and filled in later.
// A resource whose handle is already held by another owner in this Scope is rejected.
func (s *Scope) Adopt(resource Resource) error {
	if resource == nil {
		return ErrNilOwner
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.destroyed {
		return errors.Wrapf(ErrScopeDestroyed, "cannot adopt %s", resource.Kind())
	}

	for _, existing := range s.resources {
		if existing == resource {
			return errors.Wrapf(ErrDuplicateHandle, "this %s owner was already adopted", resource.Kind())
		}
	}

	if !resource.IsEmpty() {
		holder, held := s.indexLiveHandles().Get(resource.HandleValue())
		if held {
			return errors.Wrapf(ErrDuplicateHandle, "%s handle %v is already held by a %s owner",
				resource.Kind(), resource.HandleValue(), holder.Kind())
		}
	}

	s.resources = append(s.resources, resource)
	keeputils.DebugValidate(lockedScope{s})

	return nil
}

// lockedScope validates a Scope whose mutex is already held
type lockedScope struct {
	scope *Scope
}

func (l lockedScope) Validate() error {
	return l.scope.validate()
}

func (s *Scope) indexLiveHandles() *swiss.Map[any, Resource] {
	index := swiss.NewMap[any, Resource](uint32(len(s.resources)) + 1)
	for _, resource := range s.resources {
		if !resource.IsEmpty() {
			index.Put(resource.HandleValue(), resource)
		}
	}

	return index
}

// Destroy releases every adopted owner, most recently adopted first. Release failures are logged
// by the owners and never propagated. Destroying a Scope twice is a no-op.
//
// An owner that was reset to a handle already released earlier in the teardown is not released a
// second time: the duplicate is logged and, for an *Owner, emptied.
func (s *Scope) Destroy() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.destroyed {
		return
	}
	s.logger.Debug("Scope::Destroy", slog.Int("OwnerCount", len(s.resources)))

	released := swiss.NewMap[any, Resource](uint32(len(s.resources)) + 1)
	for i := len(s.resources) - 1; i >= 0; i-- {
		resource := s.resources[i]
		if resource.IsEmpty() {
			resource.Destroy()
			continue
		}

		handle := resource.HandleValue()
		holder, seen := released.Get(handle)
		if seen {
			err := errors.Wrapf(ErrDuplicateHandle, "%s handle %v was already released by a %s owner",
				resource.Kind(), handle, holder.Kind())
			s.logger.LogAttrs(context.Background(), slog.LevelError, "skipping release of shared handle",
				slog.String("kind", resource.Kind().String()),
				slog.Any("error", err),
			)
			if forgetter, ok := resource.(handleForgetter); ok {
				forgetter.forgetHandle()
			}
			continue
		}
		released.Put(handle, resource)

		if s.flags&ScopeCreateLogReleases != 0 {
			s.logger.LogAttrs(context.Background(), slog.LevelInfo, "[UNRELEASED HANDLE] releasing at scope teardown",
				slog.String("kind", resource.Kind().String()),
				slog.String("handle", fmt.Sprintf("%v", handle)),
			)
		}
		resource.Destroy()
	}

	s.resources = nil
	s.destroyed = true
}

// Validate verifies that no two owners in this Scope hold the same non-null handle
func (s *Scope) Validate() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.validate()
}

func (s *Scope) validate() error {
	seen := swiss.NewMap[any, Resource](uint32(len(s.resources)) + 1)
	for _, resource := range s.resources {
		if resource.IsEmpty() {
			continue
		}

		other, ok := seen.Get(resource.HandleValue())
		if ok {
			return errors.Wrapf(ErrDuplicateHandle, "%s handle %v is held by two owners (the other is a %s owner)",
				resource.Kind(), resource.HandleValue(), other.Kind())
		}
		seen.Put(resource.HandleValue(), resource)
	}

	return nil
}

// Len returns the number of owners adopted into this Scope
func (s *Scope) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.resources)
}

func (s *Scope) CalculateStatistics(stats *Statistics) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats.Clear()
	for _, resource := range s.resources {
		stats.AddResource(resource)
	}
}

// BuildStatsString writes a JSON description of every owner in this Scope, in adoption order
func (s *Scope) BuildStatsString(writer *jwriter.Writer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var stats Statistics
	for _, resource := range s.resources {
		stats.AddResource(resource)
	}

	o := writer.Object()
	defer o.End()

	o.Name("Destroyed").Bool(s.destroyed)
	o.Name("OwnerCount").Int(stats.OwnerCount)
	o.Name("LiveCount").Int(stats.LiveCount)

	owners := o.Name("Owners").Array()
	for _, resource := range s.resources {
		ro := owners.Object()
		printResource(&ro, resource)
		ro.End()
	}
	owners.End()
}

func printResource(json *jwriter.ObjectState, resource Resource) {
	json.Name("Kind").String(resource.Kind().String())
	json.Name("Empty").Bool(resource.IsEmpty())

	if !resource.IsEmpty() {
		json.Name("Handle").String(fmt.Sprintf("%v", resource.HandleValue()))
	}
}
