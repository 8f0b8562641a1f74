// Package parser implements the PEG-style grammar for the FFmpeg
// command-line surface described in §4.1:
//
//	command     = "ffmpeg" global_opt* input_spec+ output_spec+
//	input_spec  = input_opt* "-i" path
//	output_spec = output_opt* path
//
// Unknown flags are recovered by consuming a single token and recording a
// diagnostic rather than aborting (§4.1, §7); callers always receive an
// AST, possibly only partially populated.
package parser

import (
	"fmt"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/lexer"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

// Parser consumes a token stream and builds an ast.Command.
type Parser struct {
	toks []token.Token
	pos  int
	acc  *diag.Accumulator
}

// Parse lexes and parses content, appending any structural/recovery
// diagnostics to acc, and returns the resulting (possibly partial) AST.
func Parse(content string, acc *diag.Accumulator) *ast.Command {
	p := &Parser{toks: lexer.New(content).All(), acc: acc}
	return p.parseCommand()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) atEOF() bool {
	return p.cur().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) parseCommand() *ast.Command {
	cmd := &ast.Command{}

	if p.cur().Type == token.FFMPEG {
		cmd.Span.Start = p.cur().Span.Start
		p.advance()
	} else if !p.atEOF() {
		cmd.Span.Start = p.cur().Span.Start
	}

	// input_spec+
	for {
		run := p.parseOptionRun()
		if p.cur().IsFlag() && p.cur().Literal == "-i" && p.cur().Spec == "" {
			iSpan := p.cur().Span
			p.advance()
			path, pathSpan, ok := p.expectPath()
			if !ok {
				p.appendGlobals(cmd, run)
				break
			}
			cmd.Inputs = append(cmd.Inputs, ast.InputSpec{
				Options:   p.appendInputs(cmd, run),
				Path:      path,
				PathSpan:  pathSpan,
				IFlagSpan: iSpan,
				Index:     len(cmd.Inputs),
			})
			continue
		}
		// No "-i" found: run (plus whatever follows) starts the output
		// section instead.
		p.appendGlobals(cmd, run)
		p.startOutputs(cmd, run)
		break
	}

	// A blank (or otherwise token-free) command is not malformed, it's
	// simply empty: len(p.toks)==1 means the stream held nothing but the
	// sentinel EOF token, so there was never a command to judge (§4.6, §8).
	if (len(cmd.Inputs) == 0 || len(cmd.Outputs) == 0) && len(p.toks) > 1 {
		cmd.Malformed = true
		p.acc.Add(structuralDiagnostic(cmd))
	}

	if len(p.toks) > 0 {
		cmd.Span.End = p.toks[len(p.toks)-1].Span.End
	}

	return cmd
}

// startOutputs consumes the remaining token stream as a sequence of
// output_spec blocks, seeding the first block's options with leftover.
func (p *Parser) startOutputs(cmd *ast.Command, leftover []ast.Option) {
	pending := leftover
	for {
		if p.atEOF() && len(pending) == 0 {
			return
		}
		run := append(pending, p.parseOptionRun()...)
		pending = nil

		if p.atEOF() {
			if len(run) > 0 {
				// Trailing flags with no terminating path: drop them into
				// the last recorded output, or surface as malformed if
				// there is none yet.
				if len(cmd.Outputs) > 0 {
					last := &cmd.Outputs[len(cmd.Outputs)-1]
					last.Options = append(last.Options, classifyOutputOnly(cmd, run)...)
				}
			}
			return
		}

		path, pathSpan, ok := p.expectPath()
		if !ok {
			return
		}
		cmd.Outputs = append(cmd.Outputs, ast.OutputSpec{
			Options:  classifyOutputOnly(cmd, run),
			Path:     path,
			PathSpan: pathSpan,
			Index:    len(cmd.Outputs),
		})
	}
}

// parseOptionRun consumes a maximal run of FLAG tokens (with their values,
// where applicable), stopping at a WORD token or EOF. Unknown flags are
// recovered per §4.1/§7 by consuming exactly one token and recording an
// UnknownOption diagnostic.
func (p *Parser) parseOptionRun() []ast.Option {
	var opts []ast.Option
	for p.cur().IsFlag() {
		if p.cur().Literal == "-i" && p.cur().Spec == "" {
			// "-i" is structural (starts a new input_spec), not a
			// value-bearing option of the current run; leave it for
			// parseCommand's lookahead.
			break
		}
		flagTok := p.advance()

		if !known(flagTok.Literal) {
			p.acc.Add(unknownOptionDiagnostic(flagTok))
			continue
		}

		opt := ast.Option{
			Kind:     resolveKind(flagTok.Literal, flagTok.Spec),
			FlagSpan: flagTok.Span,
			RawFlag:  flagTok.Literal,
			Spec:     flagTok.Spec,
		}

		if hasValue(flagTok.Literal) && p.cur().Type == token.WORD {
			valTok := p.advance()
			opt.ValueSpan = valTok.Span
			opt.RawValue = valTok.Literal
		}

		opts = append(opts, opt)
	}
	return opts
}

// expectPath consumes a single WORD token as a path. Returns ok=false (and
// leaves the cursor untouched) when no WORD is available, signalling the
// caller to stop building further specs.
func (p *Parser) expectPath() (string, token.Span, bool) {
	if p.cur().Type != token.WORD {
		return "", token.Span{}, false
	}
	t := p.advance()
	return t.Literal, t.Span, true
}

// appendGlobals filters run for global-kind options and appends them to
// cmd.Global, per §3's Command.Global ordered list.
func (p *Parser) appendGlobals(cmd *ast.Command, run []ast.Option) {
	for _, o := range run {
		if isGlobalKind(o.Kind) {
			cmd.Global = append(cmd.Global, o)
		}
	}
}

// appendInputs filters run for options destined for the current InputSpec
// (i.e. all non-global-kind options in the run), after also collecting any
// global-kind ones into cmd.Global.
func (p *Parser) appendInputs(cmd *ast.Command, run []ast.Option) []ast.Option {
	var rest []ast.Option
	for _, o := range run {
		if isGlobalKind(o.Kind) {
			cmd.Global = append(cmd.Global, o)
			continue
		}
		rest = append(rest, o)
	}
	return rest
}

// classifyOutputOnly mirrors appendInputs for output-section option runs.
func classifyOutputOnly(cmd *ast.Command, run []ast.Option) []ast.Option {
	var rest []ast.Option
	for _, o := range run {
		if isGlobalKind(o.Kind) {
			cmd.Global = append(cmd.Global, o)
			continue
		}
		rest = append(rest, o)
	}
	return rest
}

func unknownOptionDiagnostic(flag token.Token) (diag.Message, bool) {
	return diag.New("E501", diag.SeverityError, fmt.Sprintf("unknown option %q", flag.Literal)).
		Target(flag.Span, "not a recognized FFmpeg option").
		Finish()
}

func structuralDiagnostic(cmd *ast.Command) (diag.Message, bool) {
	span := cmd.Span
	if span == (token.Span{}) {
		span = token.Span{Start: token.Position{Line: 1, Column: 0}, End: token.Position{Line: 1, Column: 0}}
	}
	msg := "command is missing required input(s) and/or output(s)"
	switch {
	case len(cmd.Inputs) == 0 && len(cmd.Outputs) == 0:
		msg = "command has no inputs (\"-i <path>\") and no outputs"
	case len(cmd.Inputs) == 0:
		msg = "command has no inputs (\"-i <path>\")"
	case len(cmd.Outputs) == 0:
		msg = "command has no output path"
	}
	return diag.New("E001", diag.SeverityError, msg).
		Target(span, "incomplete ffmpeg invocation").
		Finish()
}
