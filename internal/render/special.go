package render

import "strings"

// specialReplacer maps the LaTeX escape sequences and accented-letter macros
// that occur in the publication databases to HTML entities, then removes
// residual group markup. Pattern order matters: longer escapes are listed
// before the bare brace removals so a brace inside an escape is consumed
// with its escape. Replacement outputs never contain a pattern, which keeps
// the pass idempotent.
var specialReplacer = strings.NewReplacer(
	`$\frac{1}{2}$ + \emph{it}`, "1/2 + <i>it</i>",
	`\emph{via}`, "<i>via</i>",
	`\&`, "&amp;",
	`\'a`, "&aacute;",
	`\u{a}`, "&#259;",
	`\'A`, "&Aacute;",
	"\\`a", "&agrave;",
	`\k{a}`, "&#261;",
	`\"a`, "&auml;",
	`\'{c}`, "&#263;",
	`\c{c}`, "&ccedil;",
	`\v{c}`, "&#269;",
	`\'e`, "&eacute;",
	`\'E`, "&Eacute;",
	"\\`e", "&egrave;",
	`\k{e}`, "&#281;",
	`\"e`, "&euml;",
	`\'i`, "&iacute;",
	"\\`i", "&igrave;",
	`\"i`, "&iuml;",
	`\l`, "&#0322;",
	`\tilde{n}`, "&ntilde;",
	`\'o`, "&oacute;",
	`\^o`, "&ocirc;",
	"\\`o", "&ograve;",
	`\"o`, "&ouml;",
	`\o`, "&oslash;",
	`\c{s}`, "&scedil;",
	`\c{t}`, "&tcedil;",
	`\'u`, "&uacute;",
	`\^u`, "&ucirc;",
	`\"u`, "&uuml;",
	`\ss`, "&szlig;",
	`\scr{R}`, "&#x211b;",
	`\textsc{`, "",
	`\texttt{`, "",
	"{", "",
	"}", "",
)

// ReplaceSpecial rewrites LaTeX special characters in a rendered HTML string
// into entities suitable for display on web pages. ASCII text outside the
// matched escape sequences is untouched, and applying the pass twice yields
// the same result as applying it once.
func ReplaceSpecial(s string) string {
	return specialReplacer.Replace(s)
}

// ReplaceSpecialURL escapes a URL for embedding in an HTML attribute.
func ReplaceSpecialURL(url string) string {
	return strings.ReplaceAll(url, "&", "&amp;")
}

// mathsReplacer rewrites the specific math typesetting snippets that appear
// in the databases into italic or entity HTML. The table is deliberately a
// closed list of observed inputs rather than a TeX math interpreter.
var mathsReplacer = strings.NewReplacer(
	"$0$", "0",
	"$_3F_2(1/4)$", "<i>_3F_2(1/4)</i>",
	"$_4$", "<sub>4</sub>",
	`$\~A_2$`, "&Atilde;<sub>2</sub>",
	"$f^*$", "f<sup>*</sup>",
	"$q$", "<i>q</i>",
	"$q=0$", "<i>q=0</i>",
	"$D$", "<i>D</i>",
	"$e$", "<i>e</i>",
	"$E_6$", "<i>E_6</i>",
	"$F_4$", "F<sub>4</sub>",
	`$\Gamma$`, "&Gamma;",
	`$\Gamma_0(9)$`, "&Gamma;<sub>0</sub>(9)",
	`$\Gamma_H(N)$`, "&Gamma;<sub>H</sub>(N)",
	"$k$", "<i>k</i>",
	"$K$", "<i>K</i>",
	"$L$", "<i>L</i>",
	`$\mathbbF_q[t]$`, "<i>F_q[t]</i>",
	`$Br(k(\mathcalC)/k)$`, "<i>Br(k(C)/k)</i>",
	`$\mathcalC$`, "<i>C</i>",
	`$\mathcalJ$`, "<i>J</i>",
	"$N$", "<i>N</i>",
	`$\~n$`, "&ntilde;",
	"$p$", "<i>p</i>",
	`$PSL_2(\mathbb Z)$`, "<i>PSL_2(Z)</i>",
	"$S_n$", "<i>S_n</i>",
	"$S_N$", "<i>S_N</i>",
	"$U_7$", "<i>U_7</i>",
	"$w$", "<i>w</i>",
	"$Y^2=X^3+c$", "<i>Y^2=X^3+c</i>",
	"$Z_N$", "<i>Z_N</i>",
	`$\zeta(s) - c$`, "&zeta;(s) - c",
	`$\mathbb Q$`, "<i>Q</i>",
)

// ReplaceMaths rewrites known math typesetting in an HTML page into plain
// HTML markup.
func ReplaceMaths(s string) string {
	return mathsReplacer.Replace(s)
}
