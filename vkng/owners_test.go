package vkng

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/keeper/handle"
	"golang.org/x/exp/slog"
)

type destroyLog struct {
	names []string
}

type fakeObject struct {
	name string
	log  *destroyLog
}

func (o *fakeObject) Destroy(callbacks *driver.AllocationCallbacks) {
	o.log.names = append(o.log.names, o.name)
}

func TestOwn_TeardownOrder(t *testing.T) {
	log := &destroyLog{}
	scope := handle.NewScope(slog.New(slog.NewJSONHandler(io.Discard, nil)), handle.ScopeCreateOptions{})

	objects := []struct {
		kind handle.Kind
		name string
	}{
		{handle.KindInstance, "instance"},
		{handle.KindSurface, "surface"},
		{handle.KindDevice, "device"},
		{handle.KindSwapchain, "swapchain"},
		{handle.KindImageView, "imageview"},
		{handle.KindRenderPass, "renderpass"},
		{handle.KindPipeline, "pipeline"},
	}
	for _, object := range objects {
		_, err := Own[*fakeObject](scope, object.kind, &fakeObject{name: object.name, log: log}, nil)
		require.NoError(t, err)
	}

	scope.Destroy()
	require.Equal(t, []string{"pipeline", "renderpass", "imageview", "swapchain", "device", "surface", "instance"}, log.names)
}

func TestOwn_SwapchainRecreation(t *testing.T) {
	log := &destroyLog{}
	scope := handle.NewScope(nil, handle.ScopeCreateOptions{})

	swapchain, err := Own[*fakeObject](scope, handle.KindSwapchain, nil, nil)
	require.NoError(t, err)
	require.True(t, swapchain.IsEmpty())

	swapchain.Reset(&fakeObject{name: "first", log: log})
	swapchain.Reset(&fakeObject{name: "second", log: log})
	require.Equal(t, []string{"first"}, log.names)

	scope.Destroy()
	require.Equal(t, []string{"first", "second"}, log.names)
}

func TestDestroyWith(t *testing.T) {
	log := &destroyLog{}
	release := DestroyWith[*fakeObject](nil)

	require.NoError(t, release(&fakeObject{name: "fence", log: log}))
	require.Equal(t, []string{"fence"}, log.names)
}
