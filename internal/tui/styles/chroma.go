package styles

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// GetChromaTheme maps the JSON token types onto the current theme
func GetChromaTheme() chroma.StyleEntries {
	t := CurrentTheme()

	return chroma.StyleEntries{
		chroma.Text:                colorToHex(t.FgBase),
		chroma.Error:               colorToHex(t.Error),
		chroma.Punctuation:         colorToHex(t.FgSubtle),
		chroma.NameTag:             colorToHex(t.BlueLight),
		chroma.Keyword:             colorToHex(t.Primary) + " bold",
		chroma.KeywordConstant:     colorToHex(t.Orange),
		chroma.LiteralNumber:       colorToHex(t.Yellow),
		chroma.LiteralString:       colorToHex(t.Green),
		chroma.LiteralStringEscape: colorToHex(t.Orange),
	}
}

// HighlightJSON colors JSON text for the terminal. Text the lexer cannot
// handle comes back as is.
func HighlightJSON(src string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	style, err := chroma.NewStyle(CurrentTheme().Name, GetChromaTheme())
	if err != nil {
		return src
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return src
	}

	var out strings.Builder
	if err := formatters.TTY256.Format(&out, style, it); err != nil {
		return src
	}
	return out.String()
}
