package pipeline

import (
	"fmt"
	"strings"

	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// Target is a supported output language
type Target string

const (
	TargetR       Target = "r"
	TargetJava    Target = "java"
	TargetPySpark Target = "pyspark"
	TargetPython  Target = "python"
)

// Targets returns the translation targets with a prompt template
func Targets() []Target {
	return []Target{TargetR, TargetJava, TargetPySpark}
}

// promptTemplates shape each translation request; the comment syntax
// matches the target language so the model treats it as an instruction,
// not code to translate
var promptTemplates = map[Target]string{
	TargetR: `
# Convert the following Python code to R, ignore prompts with no code

%s

# R translation:
`,
	TargetJava: `
// Convert the following Python code to Java, ignore prompts with no code

%s

// Java translation:
`,
	TargetPySpark: `
# Convert the following Python code to Pyspark, ignore prompts with no code

%s

# Pyspark translation:
`,
}

// versionTemplate shapes a Python version migration request
const versionTemplate = `
# You are a Python version migration assistant.
# Convert the given Python code to be fully compatible with Python %s.
# Update syntax, libraries, and semantics as needed, or downgrade features.
# Maintain equivalent functionality.

%s

# Updated Python %s code:
`

// overviewTemplate shapes the developer-facing comparison report request
const overviewTemplate = `
You are a senior software engineer. Compare the original code and the modified code.
List:
- Potential issues
- Manual tweaks developers might need
- Compatibility concerns
- Refactoring suggestions

Original code:
%s

Modified code:
%s

Provide your analysis:
`

// RenderPrompt renders the translation prompt for a chunk
func RenderPrompt(target Target, chunk string) (string, error) {
	tmpl, ok := promptTemplates[target]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedTarget, target)
	}
	return fmt.Sprintf(tmpl, chunk), nil
}

// RenderVersionPrompt renders the Python version migration prompt
func RenderVersionPrompt(version, chunk string) string {
	return fmt.Sprintf(versionTemplate, version, chunk, version)
}

// OverviewPrompt renders the comparison report prompt
func OverviewPrompt(original, modified string) string {
	return fmt.Sprintf(overviewTemplate, original, modified)
}

// WrapJava wraps translated statements in a runnable Java program. The
// executor compiles the file as TranslatedProgram.java, so the class name
// is fixed.
func WrapJava(code string) string {
	lines := strings.Split(code, "\n")
	indented := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			indented[i] = ""
			continue
		}
		indented[i] = "        " + line
	}

	return "public class TranslatedProgram {\n" +
		"    public static void main(String[] args) {\n" +
		strings.Join(indented, "\n") + "\n" +
		"    }\n" +
		"}\n"
}
