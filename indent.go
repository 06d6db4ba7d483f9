package pretty

import "strings"

// Indent prefixes every line of s with the configured indent repeated depth
// times. A trailing newline does not start a new line. With an empty indent
// or a depth of zero s is returned unchanged.
func (r *Renderer) Indent(s string, depth int) string {
	if r.cfg.Indent == "" || depth <= 0 {
		return s
	}
	prefix := strings.Repeat(r.cfg.Indent, depth)
	var b strings.Builder
	b.Grow(len(s) + len(prefix)*(strings.Count(s, "\n")+1))
	for line := range strings.SplitAfterSeq(s, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}
