package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Mode selects where code is highlighted.
type Mode string

// Highlight modes.
const (
	ModeClient Mode = "client" // plain escaped code, highlighted in the browser
	ModeServer Mode = "server" // tokenised with chroma at build time
)

// Default chroma styles for the two themes.
const (
	DefaultLightStyle = "github"
	DefaultDarkStyle  = "monokai"
)

// ParseMode validates a highlight mode name. Empty selects ModeClient.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeClient:
		return ModeClient, nil
	case ModeServer:
		return ModeServer, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: client, server)", ErrHighlightMode, s)
	}
}

// cssFormatter returns the class-based chroma formatter whose stylesheet
// matches the markup written by highlightCode.
func cssFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(true),
	)
}

// highlightCode writes code as chroma token spans, one line wrapper per
// source line with its number. Unknown languages fall back to plain text
// tokens. The surrounding <pre><code> belongs to the caller.
func highlightCode(w *strings.Builder, lang, code string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenising %s code: %w", lang, err)
	}

	lineClass := chroma.StandardTypes[chroma.Line]
	numberClass := chroma.StandardTypes[chroma.LineNumbers]
	codeClass := chroma.StandardTypes[chroma.CodeLine]
	lines := chroma.SplitTokensIntoLines(iterator.Tokens())
	if n := len(lines); n > 0 && blankLine(lines[n-1]) {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		fmt.Fprintf(w, `<span class="%s"><span class="%s">%d</span><span class="%s">`, lineClass, numberClass, i+1, codeClass)
		for _, token := range line {
			value := html.EscapeString(token.Value)
			if class := tokenClass(token.Type); class != "" {
				w.WriteString(`<span class="` + class + `">` + value + `</span>`)
			} else {
				w.WriteString(value)
			}
		}
		w.WriteString("</span></span>")
	}
	return nil
}

// blankLine reports whether line holds only empty tokens, as left behind
// by a trailing newline.
func blankLine(line []chroma.Token) bool {
	for _, token := range line {
		if token.Value != "" {
			return false
		}
	}
	return true
}

// tokenClass maps a token type to its chroma CSS class, falling back to the
// sub-category and category the way the chroma formatter does.
func tokenClass(tt chroma.TokenType) string {
	for _, candidate := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if class, ok := chroma.StandardTypes[candidate]; ok {
			return class
		}
	}
	return ""
}

// lookupStyle resolves a chroma style by name.
func lookupStyle(name string) (*chroma.Style, error) {
	style := styles.Get(name)
	if style == styles.Fallback && !strings.EqualFold(name, styles.Fallback.Name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return style, nil
}

// HighlightCSS returns the stylesheet for server-highlighted code: the
// light style at top level and the dark style nested under
// [data-theme="dark"]. Empty names select the defaults.
func HighlightCSS(light, dark string) ([]byte, error) {
	if light == "" {
		light = DefaultLightStyle
	}
	if dark == "" {
		dark = DefaultDarkStyle
	}

	lightStyle, err := lookupStyle(light)
	if err != nil {
		return nil, err
	}
	darkStyle, err := lookupStyle(dark)
	if err != nil {
		return nil, err
	}

	formatter := cssFormatter()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/* chroma %s */\n", lightStyle.Name)
	if err := formatter.WriteCSS(&buf, lightStyle); err != nil {
		return nil, fmt.Errorf("writing %s styles: %w", light, err)
	}
	fmt.Fprintf(&buf, "/* chroma %s */\n[data-theme=\"dark\"] {\n", darkStyle.Name)
	if err := formatter.WriteCSS(&buf, darkStyle); err != nil {
		return nil, fmt.Errorf("writing %s styles: %w", dark, err)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
