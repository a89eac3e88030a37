// Package ideavim holds the static translation tables used when converting a
// Neovim configuration into an .ideavimrc, plus the warning type shared by the
// conversion passes.
package ideavim

// Placeholder marks the substitution point in a parameterized directive template.
const Placeholder = "{}"

// InvertedOption is the one option whose directive already encodes the
// negated setting. It is emitted only when the source value is false.
const InvertedOption = "wrap"

// ActionMarker identifies an IDE action invocation inside a mapping target.
const ActionMarker = "<Action>"

// WarningKind classifies why a line was skipped or altered.
type WarningKind string

const (
	WarnMissingFile       WarningKind = "missing-file"
	WarnComplexExpression WarningKind = "complex-expression"
	WarnEscapeClearSearch WarningKind = "escape-clear-search"
	WarnExternalFunction  WarningKind = "external-function"
)

// String returns the string representation of the kind.
func (k WarningKind) String() string {
	return string(k)
}

// Warning is an advisory note about a skipped or altered conversion.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return w.Message
}

// MissingFile reports an input file that does not exist.
func MissingFile(name string) Warning {
	return Warning{Kind: WarnMissingFile, Message: name + " not found"}
}

// ComplexExpression reports an expression mapping that cannot be translated.
func ComplexExpression(lhs string) Warning {
	return Warning{Kind: WarnComplexExpression, Message: "Skipped complex expression mapping: " + lhs}
}

// EscapeClearSearch reports the skipped <Esc> to :nohlsearch mapping.
func EscapeClearSearch() Warning {
	return Warning{
		Kind:    WarnEscapeClearSearch,
		Message: "Skipped Esc → nohlsearch mapping (causes command mode issues in IdeaVim)",
	}
}

// ExternalFunction reports a mapping whose target calls into Lua code.
func ExternalFunction(lhs string) Warning {
	return Warning{Kind: WarnExternalFunction, Message: "Skipped Lua function mapping: " + lhs}
}

// HasKind reports whether any warning in ws has the given kind.
func HasKind(ws []Warning, kind WarningKind) bool {
	for _, w := range ws {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
