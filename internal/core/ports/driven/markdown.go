package driven

// MarkdownConverter converts markdown to an HTML fragment.
// Implementations must pass raw inline HTML through unescaped.
type MarkdownConverter interface {
	Convert(markdown string) (string, error)
}
