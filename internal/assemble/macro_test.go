package assemble

import (
	"strings"
	"testing"
)

func TestMacroFile(t *testing.T) {
	sections := &SectionSet{
		Papers: Section{Name: "papers", Items: []Item{
			{HTML: "A B. First. 1999."},
			{HTML: "C D. Second. 2005."},
		}},
		Theses:    Section{Name: "thesis"},
		Books:     Section{Name: "books", Items: []Item{{HTML: "E F. A Book. 2007."}}},
		Preprints: Section{Name: "preprints"},
	}
	got := string(MacroFile(sections))

	if !strings.HasPrefix(got, "{# DON'T EDIT! File has been autogenerated by pubparse #}\n") {
		t.Errorf("missing autogeneration header:\n%s", got)
	}

	wantPapers := `{% macro papers() %}
<ol>
  <li>A B. First. 1999.</li>
  <li>C D. Second. 2005.</li>
</ol>
{% endmacro %}`
	if !strings.Contains(got, wantPapers) {
		t.Errorf("papers macro not rendered as expected:\n%s", got)
	}

	wantEmpty := `{% macro thesis() %}
<ol>
</ol>
{% endmacro %}`
	if !strings.Contains(got, wantEmpty) {
		t.Errorf("empty section should still define its macro:\n%s", got)
	}

	for _, name := range []string{"papers", "thesis", "books", "preprints"} {
		if !strings.Contains(got, "{% macro "+name+"() %}") {
			t.Errorf("missing macro %s", name)
		}
	}

	// Macro order follows page order.
	if strings.Index(got, "macro papers()") > strings.Index(got, "macro thesis()") {
		t.Error("papers macro must come before thesis macro")
	}
}

func TestMacroFile_RewritesMaths(t *testing.T) {
	sections := &SectionSet{
		Papers:    Section{Name: "papers", Items: []Item{{HTML: `A B. Points over $\mathbb Q$. 2005.`}}},
		Theses:    Section{Name: "thesis"},
		Books:     Section{Name: "books"},
		Preprints: Section{Name: "preprints"},
	}
	got := string(MacroFile(sections))
	if !strings.Contains(got, "Points over <i>Q</i>.") {
		t.Errorf("math typesetting should be rewritten:\n%s", got)
	}
}
