// Package markdown turns contributor text into HTML fragments. The default
// engine is the writer's markdown dialect: an ordered list of regular
// expression rewrites that published pages depend on byte for byte. A
// goldmark-backed CommonMark engine is available behind the same
// interfaces.MarkdownParser contract, together with the example and related
// link block processors and front matter parsing for authored sources.
package markdown
