package handle

import (
	"bytes"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type releaseRecorder struct {
	released []uintptr
	err      error
}

func (r *releaseRecorder) Release(handle uintptr) error {
	r.released = append(r.released, handle)
	return r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestOwner_Get(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindFence, 7, recorder.Release)

	require.Equal(t, uintptr(7), owner.Get())
	require.False(t, owner.IsEmpty())
	require.Equal(t, KindFence, owner.Kind())
	require.Equal(t, uintptr(7), owner.Get())
	require.Empty(t, recorder.released)
}

func TestOwner_Empty(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := NewEmpty[uintptr](nil, KindSwapchain, recorder.Release)

	require.True(t, owner.IsEmpty())
	require.Equal(t, uintptr(0), owner.Get())

	owner.Destroy()
	require.Empty(t, recorder.released)

	owner.Reset(12)
	require.Equal(t, uintptr(12), owner.Get())
	require.Empty(t, recorder.released)

	owner.Destroy()
	require.Equal(t, []uintptr{12}, recorder.released)
}

func TestOwner_Reset(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindImageView, 1, recorder.Release)

	owner.Reset(2)
	require.Equal(t, uintptr(2), owner.Get())
	require.Equal(t, []uintptr{1}, recorder.released)

	owner.Reset(2)
	require.Equal(t, uintptr(2), owner.Get())
	require.Equal(t, []uintptr{1}, recorder.released)

	owner.Reset(0)
	require.True(t, owner.IsEmpty())
	require.Equal(t, []uintptr{1, 2}, recorder.released)
}

func TestOwner_DestroyExactlyOnce(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindDevice, 5, recorder.Release)

	owner.Destroy()
	owner.Destroy()

	require.Equal(t, []uintptr{5}, recorder.released)
	require.True(t, owner.IsEmpty())
}

func TestOwner_ResetSequence(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindFramebuffer, 10, recorder.Release)

	owner.Reset(20)
	owner.Reset(30)
	owner.Reset(40)
	owner.Destroy()

	require.Equal(t, []uintptr{10, 20, 30, 40}, recorder.released)
}

func TestOwner_Move(t *testing.T) {
	recorder := &releaseRecorder{}
	source := New[uintptr](discardLogger(), KindPipeline, 3, recorder.Release)

	dest := source.Move()
	require.Empty(t, recorder.released)
	require.True(t, source.IsEmpty())
	require.Equal(t, uintptr(3), dest.Get())
	require.Equal(t, KindPipeline, dest.Kind())

	source.Destroy()
	require.Empty(t, recorder.released)

	dest.Destroy()
	require.Equal(t, []uintptr{3}, recorder.released)
}

func TestOwner_MoveFrom(t *testing.T) {
	sourceRecorder := &releaseRecorder{}
	destRecorder := &releaseRecorder{}

	source := New[uintptr](discardLogger(), KindBuffer, 8, sourceRecorder.Release)
	dest := New[uintptr](discardLogger(), KindBuffer, 9, destRecorder.Release)

	dest.MoveFrom(source)
	require.True(t, source.IsEmpty())
	require.Equal(t, uintptr(8), dest.Get())
	require.Equal(t, []uintptr{9}, destRecorder.released)
	require.Empty(t, sourceRecorder.released)

	dest.Destroy()
	require.Equal(t, []uintptr{8}, sourceRecorder.released)
	require.Equal(t, []uintptr{9}, destRecorder.released)
}

func TestOwner_MoveFromSelf(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindBuffer, 8, recorder.Release)

	owner.MoveFrom(owner)
	require.Equal(t, uintptr(8), owner.Get())
	require.Empty(t, recorder.released)

	owner.MoveFrom(nil)
	require.True(t, owner.IsEmpty())
	require.Equal(t, []uintptr{8}, recorder.released)
}

func TestOwner_Detach(t *testing.T) {
	recorder := &releaseRecorder{}
	owner := New[uintptr](discardLogger(), KindSemaphore, 4, recorder.Release)

	require.Equal(t, uintptr(4), owner.Detach())
	require.True(t, owner.IsEmpty())

	owner.Destroy()
	require.Empty(t, recorder.released)
}

func TestOwner_ReleaseErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	recorder := &releaseRecorder{err: errors.New("device lost")}
	owner := New[uintptr](logger, KindCommandPool, 6, recorder.Release)

	owner.Destroy()
	require.True(t, owner.IsEmpty())
	require.Equal(t, []uintptr{6}, recorder.released)
	require.Contains(t, buf.String(), "failed to release handle")
	require.Contains(t, buf.String(), "device lost")
	require.Contains(t, buf.String(), "KindCommandPool")
}

func TestOwner_ReleasePanicIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	owner := New[uintptr](logger, KindShaderModule, 6, func(handle uintptr) error {
		panic("driver exploded")
	})

	require.NotPanics(t, owner.Destroy)
	require.True(t, owner.IsEmpty())
	require.Contains(t, buf.String(), "driver exploded")
}

func TestOwner_NilRelease(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	owner := New[uintptr](logger, KindOther, 6, nil)

	require.NotPanics(t, owner.Destroy)
	require.True(t, owner.IsEmpty())
	require.Contains(t, buf.String(), "owner has no release function")
}

func TestReleaseWith(t *testing.T) {
	var destroyed []string
	owner := New[string](discardLogger(), KindWindow, "main", ReleaseWith(func(handle string) {
		destroyed = append(destroyed, handle)
	}))

	owner.Reset("secondary")
	owner.Destroy()

	require.Equal(t, []string{"main", "secondary"}, destroyed)
}
