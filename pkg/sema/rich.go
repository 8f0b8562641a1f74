package sema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
)

// Rich payload templates, keyed by error code or stream kind, live beside
// the analyzer rather than inside the builder package (DESIGN NOTES §9):
// they are presentation, not analysis, and have no bearing on whether a
// diagnostic fires.

// filterCatalogHint lists the known filters accepted by a chain of the
// given kind, attached to E502 (unknown filter).
func filterCatalogHint(reg *kb.Registry, chainKind kb.StreamKind) []diag.RichBlock {
	names := reg.FilterNames(chainKind)
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Known %s filters:\n\n", chainKind)
	for _, n := range names {
		fmt.Fprintf(&b, "- `%s`\n", n)
	}
	return []diag.RichBlock{diag.MarkdownGfmBlock(b.String())}
}

// streamMismatchRich explains a filter or codec placed in the wrong chain,
// with a small Mermaid diagram of the two chains and the mismatch.
func streamMismatchRich(mismatchCode string) []diag.RichBlock {
	wrongChain, rightChain := "-vf", "-af"
	if mismatchCode == "E102" {
		wrongChain, rightChain = "-af", "-vf"
	}

	md := fmt.Sprintf("An audio-only or video-only filter landed in the wrong chain. "+
		"Move it from `%s` to `%s`, or vice versa.", wrongChain, rightChain)

	mermaid := fmt.Sprintf(`graph LR
    A[input] --> V["%s chain"]
    A --> Au["%s chain"]
    V -.mismatch.-> Au`, wrongChain, rightChain)

	return []diag.RichBlock{
		diag.MarkdownGfmBlock(md),
		diag.MermaidBlock(mermaid),
	}
}

// containerCompatibilityTable lists the codecs container allows, attached
// to E201 (codec/container incompatibility).
func containerCompatibilityTable(container kb.Container) []diag.RichBlock {
	names := make([]string, 0, len(container.Codecs))
	for name := range container.Codecs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Codecs compatible with `%s`:\n\n| Codec |\n| --- |\n", container.Name)
	for _, n := range names {
		fmt.Fprintf(&b, "| `%s` |\n", n)
	}
	return []diag.RichBlock{diag.MarkdownGfmBlock(b.String())}
}

// filterComplexGraph renders the parsed label graph for -filter_complex
// diagnostics, highlighting the offending label.
func filterComplexGraph(labelsIn, labelsOut []string, missing string) []diag.RichBlock {
	var b strings.Builder
	b.WriteString("graph LR\n")
	for _, in := range labelsIn {
		style := ""
		if in == missing {
			style = ":::missing"
		}
		fmt.Fprintf(&b, "    %s[%s]%s --> chain\n", sanitizeLabel(in), in, style)
	}
	for _, out := range labelsOut {
		fmt.Fprintf(&b, "    chain --> %s[%s]\n", sanitizeLabel(out), out)
	}
	b.WriteString("    classDef missing fill:#fbb,stroke:#900\n")
	return []diag.RichBlock{diag.MermaidBlock(b.String())}
}

func sanitizeLabel(s string) string {
	return "n_" + strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, s)
}
