package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistryGetReturnsRegisteredAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := NewMockAdapter(ctrl)
	mock.EXPECT().Name().Return("anthropic").AnyTimes()

	registry := NewRegistry(mock)

	got, err := registry.Get("anthropic")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", got.Name())
}

func TestRegistryGetUnknownNameErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := NewMockAdapter(ctrl)
	mock.EXPECT().Name().Return("openai").AnyTimes()

	registry := NewRegistry(mock)

	_, err := registry.Get("azure")
	require.Error(t, err)
}

func TestMockAdapterSatisfiesInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockAdapter(ctrl)

	mock.EXPECT().BaseURL().Return("https://example.invalid")
	mock.EXPECT().Headers("sk-test").Return(map[string]string{"Authorization": "Bearer sk-test"})

	var adapter Adapter = mock

	assert.Equal(t, "https://example.invalid", adapter.BaseURL())
	assert.Equal(t, "Bearer sk-test", adapter.Headers("sk-test")["Authorization"])
}
