package richtext

import "github.com/alecthomas/chroma"

// codeStyle matches the site's charcoal panels.
var codeStyle = chroma.MustNewStyle("sgwb", chroma.StyleEntries{
	chroma.Background:        "#f5f5f5 bg:#212121",
	chroma.Error:             "#ff6b6b",
	chroma.LineNumbers:       "#8a8a8a",
	chroma.Comment:           "italic #9e9e9e",
	chroma.CommentPreproc:    "#ffff3a",
	chroma.Keyword:           "bold #ffff3a",
	chroma.KeywordConstant:   "#ffd54f",
	chroma.KeywordType:       "#80cbc4",
	chroma.Name:              "#f5f5f5",
	chroma.NameBuiltin:       "#80cbc4",
	chroma.NameFunction:      "#90caf9",
	chroma.NameTag:           "#ffff3a",
	chroma.NameAttribute:     "#ffd54f",
	chroma.LiteralString:     "#a5d6a7",
	chroma.LiteralNumber:     "#ffab91",
	chroma.Operator:          "#e0e0e0",
	chroma.Punctuation:       "#bdbdbd",
	chroma.GenericDeleted:    "#ff6b6b",
	chroma.GenericInserted:   "#a5d6a7",
	chroma.GenericEmph:       "italic",
	chroma.GenericStrong:     "bold",
	chroma.GenericSubheading: "#9e9e9e",
})
