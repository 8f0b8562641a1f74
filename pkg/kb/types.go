// Package kb holds the static, read-only-after-init knowledge base: codec
// catalog, container catalog, codec/container compatibility, filter
// catalog, and extension-to-stream-set table (§2, §3, §9). Tables are
// loaded once at package init and are open to extension through Registry's
// registration methods, mirroring the teacher's operator registry
// (pkg/operators/registry.go) generalized from a single operator table to
// four parallel catalogs.
package kb

// StreamKind is one of video, audio, subtitle (GLOSSARY).
type StreamKind string

const (
	Video    StreamKind = "video"
	Audio    StreamKind = "audio"
	Subtitle StreamKind = "subtitle"
)

// Codec describes one entry in the codec catalog (§3).
type Codec struct {
	Name       string
	Aliases    []string
	Kind       StreamKind
	Containers map[string]bool // allowed container names
}

// Matches reports whether name (case-sensitive, as FFmpeg codec names are)
// equals the codec's canonical name or one of its aliases.
func (c Codec) Matches(name string) bool {
	if c.Name == name {
		return true
	}
	for _, a := range c.Aliases {
		if a == name {
			return true
		}
	}
	return false
}

// Container describes one entry in the container catalog (§3).
type Container struct {
	Name       string
	Extensions []string
	Codecs     map[string]bool // allowed codec names (canonical)
}

// ParamShape is a filter's minimal parameter grammar: either a list of
// positional parameter names or a set of accepted key=value names (§3).
type ParamShape struct {
	Positional []string
	KeyValue   []string
}

// Filter describes one entry in the filter catalog (§3).
type Filter struct {
	Name    string
	Accepts StreamKind
	Params  ParamShape
}
