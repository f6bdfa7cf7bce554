package minihtml

import "fmt"

// A Stage names the pipeline stage that found an anomaly.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageStyle    Stage = "style"
)

// Diagnostic messages
const (
	MsgUnterminatedText      = "unterminated text span"
	MsgUnterminatedAttribute = "unterminated attribute span"
	MsgMissingRoot           = "document does not start with '['"
	MsgSkippedToken          = "unexpected token skipped"
	MsgMissingCloseBracket   = "missing closing bracket"
	MsgTrailingTokens        = "tokens after the document ignored"
	MsgUnknownDirective      = "unknown style directive passed through"
	MsgArgumentMismatch      = "directive argument count does not match its template"
	MsgInvalidColor          = "argument is not a valid CSS color"
	MsgUndefinedClass        = "style class used before definition"
)

// A Diagnostic describes one anomaly the pipeline recovered from.
// Diagnostics never change the generated HTML.
type Diagnostic struct {
	Stage   Stage
	Message string
	Detail  string
}

func (d Diagnostic) String() string {
	if len(d.Detail) == 0 {
		return fmt.Sprintf("%s: %s", d.Stage, d.Message)
	}
	return fmt.Sprintf("%s: %s: %q", d.Stage, d.Message, d.Detail)
}

// Diagnostics is an ordered list of anomalies.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(stage Stage, msg string, detail string) {
	*ds = append(*ds, Diagnostic{Stage: stage, Message: msg, Detail: detail})
}

// Strings returns the diagnostics formatted one per element, for logging.
func (ds Diagnostics) Strings() []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}
