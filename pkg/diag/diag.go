// Package diag builds structured diagnostic messages: codes, severities,
// labeled spans, and optional rich payloads for editor hover/side-panel
// consumers. Modeled on the teacher's parameter-validation error shape
// (pkg/operators/validator.go's ValidationError) generalized to a full
// message-with-spans builder, per DESIGN NOTES §9.
package diag

import "github.com/chicogong/ffmpeg-lint/pkg/lang/token"

// Severity is a tagged variant: Error > Warning > Info > Hint.
type Severity struct {
	Type string `json:"type"`
}

var (
	SeverityError   = Severity{Type: "Error"}
	SeverityWarning = Severity{Type: "Warning"}
	SeverityInfo    = Severity{Type: "Info"}
	SeverityHint    = Severity{Type: "Hint"}
)

// weight orders severities for the final stable sort (§3).
func (s Severity) weight() int {
	switch s.Type {
	case "Error":
		return 0
	case "Warning":
		return 1
	case "Info":
		return 2
	case "Hint":
		return 3
	default:
		return 4
	}
}

// Role is a tagged variant describing why a span is attached.
type Role struct {
	Type string `json:"type"`
}

var (
	RoleTarget     = Role{Type: "Target"}
	RoleReference  = Role{Type: "Reference"}
	RoleSuggestion = Role{Type: "Suggestion"}
)

// LabeledSpan pairs a role and message with a source span.
type LabeledSpan struct {
	Role    Role       `json:"role"`
	Message string     `json:"message"`
	Span    token.Span `json:"span"`
}

// RichBlock is a tagged variant: MarkdownGfm or Mermaid.
type RichBlock struct {
	Type     string `json:"type"`
	Markdown string `json:"markdown,omitempty"`
	Mermaid  string `json:"mermaid,omitempty"`
}

// MarkdownGfmBlock builds a Markdown rich block.
func MarkdownGfmBlock(markdown string) RichBlock {
	return RichBlock{Type: "MarkdownGfm", Markdown: markdown}
}

// MermaidBlock builds a Mermaid rich block.
func MermaidBlock(mermaid string) RichBlock {
	return RichBlock{Type: "Mermaid", Mermaid: mermaid}
}

// RichPayload is an ordered list of auxiliary blocks; never affects the
// analysis outcome.
type RichPayload struct {
	Blocks []RichBlock `json:"blocks"`
}

// Message is a single diagnostic. Rich has no omitempty: §6 EXTERNAL
// INTERFACES specifies it as "null | {blocks: [...]}", a field that is
// always present, just sometimes null.
type Message struct {
	Code     string        `json:"code"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Spans    []LabeledSpan `json:"spans"`
	Rich     *RichPayload  `json:"rich"`
}

// startOffset reports the message's earliest Target span start, used as the
// tie-breaker in the final ordering step (§3).
func (m Message) startOffset() token.Position {
	best := token.Position{Line: 1 << 30, Column: 1 << 30}
	for _, s := range m.Spans {
		if s.Role != RoleTarget {
			continue
		}
		if before(s.Span.Start, best) {
			best = s.Span.Start
		}
	}
	return best
}

func before(a, b token.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// Builder accumulates the fields of a single diagnostic, mirroring the
// conceptual API in §4.4: new -> target/reference/suggestion -> rich ->
// finish.
type Builder struct {
	code     string
	severity Severity
	message  string
	spans    []LabeledSpan
	rich     *RichPayload
}

// New opens a message builder.
func New(code string, severity Severity, message string) *Builder {
	return &Builder{code: code, severity: severity, message: message}
}

// Target attaches a Target-role span: the primary offending region.
func (b *Builder) Target(span token.Span, msg string) *Builder {
	b.spans = append(b.spans, LabeledSpan{Role: RoleTarget, Message: msg, Span: clamp(span)})
	return b
}

// Reference attaches a Reference-role span: supporting context.
func (b *Builder) Reference(span token.Span, msg string) *Builder {
	b.spans = append(b.spans, LabeledSpan{Role: RoleReference, Message: msg, Span: clamp(span)})
	return b
}

// Suggestion attaches a Suggestion-role span: a proposed edit location.
func (b *Builder) Suggestion(span token.Span, msg string) *Builder {
	b.spans = append(b.spans, LabeledSpan{Role: RoleSuggestion, Message: msg, Span: clamp(span)})
	return b
}

// Rich attaches one or more rich blocks.
func (b *Builder) Rich(blocks ...RichBlock) *Builder {
	if b.rich == nil {
		b.rich = &RichPayload{}
	}
	b.rich.Blocks = append(b.rich.Blocks, blocks...)
	return b
}

// Finish validates the invariant (>=1 Target span) and returns the
// completed Message. A message with no Target span is itself a defect in
// the analyzer, not a domain finding; Finish reports it via ok=false so
// callers can surface an internal Hint instead of silently dropping data.
func (b *Builder) Finish() (Message, bool) {
	hasTarget := false
	for _, s := range b.spans {
		if s.Role == RoleTarget {
			hasTarget = true
			break
		}
	}
	if !hasTarget {
		return Message{}, false
	}
	return Message{
		Code:     b.code,
		Severity: b.severity,
		Message:  b.message,
		Spans:    b.spans,
		Rich:     b.rich,
	}, true
}

// clamp enforces span well-formedness: start <= end, line numbers >= 1,
// columns >= 0. Ill-formed spans are clamped rather than rejected, per §4.4.
func clamp(span token.Span) token.Span {
	if span.Start.Line < 1 {
		span.Start.Line = 1
	}
	if span.End.Line < 1 {
		span.End.Line = 1
	}
	if span.Start.Column < 0 {
		span.Start.Column = 0
	}
	if span.End.Column < 0 {
		span.End.Column = 0
	}
	if span.End.Line < span.Start.Line || (span.End.Line == span.Start.Line && span.End.Column < span.Start.Column) {
		span.End = span.Start
	}
	return span
}

// Accumulator collects messages appended by successive analysis passes; a
// failing pass never aborts later passes (§4.3, §7).
type Accumulator struct {
	messages []Message
}

// Add appends msg if ok is true (the Builder.Finish contract); a dropped
// ill-formed message is recorded as an internal Hint instead, per §4.4.
func (a *Accumulator) Add(msg Message, ok bool) {
	if !ok {
		a.messages = append(a.messages, Message{
			Code:     "I000",
			Severity: SeverityHint,
			Message:  "internal: diagnostic dropped (no Target span)",
			Spans: []LabeledSpan{{
				Role: RoleTarget, Message: "here",
				Span: token.Span{Start: token.Position{Line: 1, Column: 0}, End: token.Position{Line: 1, Column: 0}},
			}},
		})
		return
	}
	a.messages = append(a.messages, msg)
}

// Messages returns the accumulated messages in final stable order: Error >
// Warning > Info > Hint, ties broken by earliest Target span start (§3).
func (a *Accumulator) Messages() []Message {
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	stableSortMessages(out)
	return out
}

func stableSortMessages(msgs []Message) {
	// Insertion sort: stable, and the slices here are always small
	// (bounded by option count per command, §5).
	for i := 1; i < len(msgs); i++ {
		j := i
		for j > 0 && less(msgs[j], msgs[j-1]) {
			msgs[j], msgs[j-1] = msgs[j-1], msgs[j]
			j--
		}
	}
}

func less(a, b Message) bool {
	if a.Severity.weight() != b.Severity.weight() {
		return a.Severity.weight() < b.Severity.weight()
	}
	return before(a.startOffset(), b.startOffset())
}
