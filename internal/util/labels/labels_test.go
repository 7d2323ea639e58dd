package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagBuilder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		workspace string
	}{
		{"simple workspace name", "adbworkspacedev01"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tags := NewTagBuilder(tt.workspace).Build()

			assert.Equal(t, tt.workspace, tags[KeyWorkspace])
			assert.Equal(t, ManagedByAdbvnet, tags[KeyManagedBy])
		})
	}
}

func TestTagBuilder_MergeAndEnvironment(t *testing.T) {
	t.Parallel()

	tags := NewTagBuilder("ws").
		WithEnvironment("development").
		Merge(map[string]string{KeyProject: "databricks", KeyEnvironment: "production"}).
		WithEnvironment("").
		Build()

	assert.Equal(t, "production", tags[KeyEnvironment])
	assert.Equal(t, "databricks", tags[KeyProject])
	assert.Len(t, tags, 4)
}

func TestTagBuilder_BuildReturnsCopy(t *testing.T) {
	t.Parallel()
	tb := NewTagBuilder("ws")

	first := tb.Build()
	first["mutated"] = "yes"

	assert.NotContains(t, tb.Build(), "mutated")
}

func TestToAzure(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToAzure(nil))

	out := ToAzure(map[string]string{"a": "1", "b": "2"})
	require.Len(t, out, 2)
	require.NotNil(t, out["a"])
	require.NotNil(t, out["b"])
	assert.Equal(t, "1", *out["a"])
	assert.Equal(t, "2", *out["b"])
}
