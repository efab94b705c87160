package quiz

import _ "embed"

//go:embed builtin/http_evolution.yaml
var httpEvolutionYAML []byte

// BuiltinID identifies the quiz served when no definition file is configured.
const BuiltinID = "http-evolution"

// Builtin returns the HTTP evolution self-assessment.
func Builtin() Quiz {
	return MustParse(httpEvolutionYAML)
}
