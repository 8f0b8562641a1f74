package sema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
)

var labelRe = regexp.MustCompile(`\[([a-zA-Z0-9_:]+)\]`)

// labelGraph tracks which labels a -filter_complex value produces and
// consumes, generalized from the teacher's Graph adjacency bookkeeping
// (pkg/planner/graph.go) from plan nodes/edges to filter-chain labels.
type labelGraph struct {
	produced map[string]bool
	consumed map[string][]string // label -> segment texts that consume it before any earlier segment produced it
}

func newLabelGraph() *labelGraph {
	return &labelGraph{produced: map[string]bool{}, consumed: map[string][]string{}}
}

// streamSpecifierLabel reports whether label looks like an input stream
// specifier ("0:v", "1:a", "0") rather than a user-defined chain label;
// these are always considered produced, since they reference the command's
// own inputs rather than an intermediate filter output.
func streamSpecifierLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, r := range label {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == ':' {
			continue
		}
		return false
	}
	return true
}

// passFilterComplex validates -filter_complex label references: every
// label consumed as a segment input must be produced either by an earlier
// segment's output or by referencing an input stream specifier (§4.3
// Pass A, E303).
func passFilterComplex(cmd *ast.Command, acc *diag.Accumulator) {
	for _, group := range allOptionGroups(cmd) {
		opt, ok := findOption(group, ast.KindFilterComplex)
		if !ok || !opt.HasValue() {
			continue
		}
		validateFilterComplex(opt, acc)
	}
}

func validateFilterComplex(opt ast.Option, acc *diag.Accumulator) {
	graph := newLabelGraph()
	var allIn, allOut []string

	for _, seg := range splitTopLevel(opt.RawValue, ';') {
		ins, outs := segmentLabels(seg.text)
		for _, in := range ins {
			allIn = append(allIn, in.text)
			if !streamSpecifierLabel(in.text) && !graph.produced[in.text] {
				graph.consumed[in.text] = append(graph.consumed[in.text], seg.text)
			}
		}
		for _, out := range outs {
			allOut = append(allOut, out.text)
			graph.produced[out.text] = true
		}
	}

	for label, segs := range graph.consumed {
		off := strings.Index(opt.RawValue, "["+label+"]")
		if off < 0 {
			off = 0
		}
		span := subSpan(opt.ValueSpan, off, len(label)+2)
		acc.Add(diag.New("E303", diag.SeverityError,
			fmt.Sprintf("filter_complex label [%s] is never produced by an earlier segment", label)).
			Target(span, fmt.Sprintf("consumed by %q but never defined", segs[0])).
			Rich(filterComplexGraph(allIn, allOut, label)...).
			Finish())
	}
}

// segmentLabels splits one filter_complex segment (between ';') into its
// leading input labels and trailing output labels, e.g.
// "[0:v][1:v]overlay[out]" -> ins=["0:v","1:v"], outs=["out"].
func segmentLabels(seg string) (ins, outs []offsetPiece) {
	matches := labelRe.FindAllStringSubmatchIndex(seg, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	// Labels form a contiguous leading run anchored at the segment start
	// and a contiguous trailing run anchored at the segment end; anything
	// in between belongs to the filter name/params, not a label.
	i, pos := 0, 0
	for i < len(matches) && matches[i][0] == pos {
		ins = append(ins, offsetPiece{text: seg[matches[i][2]:matches[i][3]], off: matches[i][0]})
		pos = matches[i][1]
		i++
	}
	j, end := len(matches)-1, len(seg)
	for j >= i && matches[j][1] == end {
		outs = append([]offsetPiece{{text: seg[matches[j][2]:matches[j][3]], off: matches[j][0]}}, outs...)
		end = matches[j][0]
		j--
	}
	return ins, outs
}
