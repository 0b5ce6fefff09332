package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. Zero, the
// default, writes compact output with no whitespace.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, for embedding output inside
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
