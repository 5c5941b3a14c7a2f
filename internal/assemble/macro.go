package assemble

import (
	"fmt"
	"strings"

	"github.com/sagemath/pubparse/internal/render"
)

// macroHeader warns template editors away from the generated file.
const macroHeader = "{# DON'T EDIT! File has been autogenerated by pubparse #}\n"

// MacroFile renders the sections as a template-macro file: one named macro
// per section (papers, thesis, books, preprints), each emitting an ordered
// list. Known math typesetting is rewritten to plain HTML in the final pass.
func MacroFile(s *SectionSet) []byte {
	var b strings.Builder
	b.WriteString(macroHeader)
	for _, section := range s.All() {
		fmt.Fprintf(&b, "\n{%% macro %s() %%}\n", section.Name)
		b.WriteString("<ol>\n")
		for _, item := range section.Items {
			b.WriteString("  <li>" + item.HTML + "</li>\n")
		}
		b.WriteString("</ol>\n")
		b.WriteString("{% endmacro %}\n")
	}
	b.WriteString("\n")
	return []byte(render.ReplaceMaths(b.String()))
}
