package labels

// Standard tag keys for provisioned resources.
const (
	// KeyWorkspace identifies which workspace a resource belongs to
	KeyWorkspace = "adbvnet-workspace"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "managed-by"

	// KeyEnvironment and KeyProject are conventional user tags
	KeyEnvironment = "environment"
	KeyProject     = "project"
)

// ManagedByAdbvnet is the managed-by value set on every resource.
const ManagedByAdbvnet = "adbvnet"

// TagBuilder provides a fluent interface for building Azure resource tags.
type TagBuilder struct {
	tags map[string]string
}

// NewTagBuilder creates a new tag builder with the workspace name pre-set.
func NewTagBuilder(workspace string) *TagBuilder {
	return &TagBuilder{
		tags: map[string]string{
			KeyWorkspace: workspace,
			KeyManagedBy: ManagedByAdbvnet,
		},
	}
}

// WithEnvironment sets the environment tag when env is non-empty.
func (tb *TagBuilder) WithEnvironment(env string) *TagBuilder {
	if env != "" {
		tb.tags[KeyEnvironment] = env
	}
	return tb
}

// Merge adds all tags from the provided map. User tags win over defaults.
func (tb *TagBuilder) Merge(extra map[string]string) *TagBuilder {
	for k, v := range extra {
		tb.tags[k] = v
	}
	return tb
}

// Build returns a copy of the tags map.
func (tb *TagBuilder) Build() map[string]string {
	result := make(map[string]string, len(tb.tags))
	for k, v := range tb.tags {
		result[k] = v
	}
	return result
}

// ToAzure converts tags to the pointer map used by the Azure SDK.
func ToAzure(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		v := v
		out[k] = &v
	}
	return out
}
