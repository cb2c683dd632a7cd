package extraction

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Timesheet preparers flag suspicious punches by hand with a red font.
// The workbooks in circulation encode that red three different ways
// depending on which tool last touched them, so all three encodings are
// recognized.
var redFontColors = map[string]bool{
	"FFFF0000": true, "FF0000": true, "FFDC143C": true, "FFB22222": true, "FF8B0000": true,
	"FFCD5C5C": true, "FFF08080": true, "FFFA8072": true, "FFFF6347": true, "FFFF1493": true,
}

var redIndexedColors = map[int]bool{3: true, 5: true, 10: true, 53: true}

// Theme slot 2 is the accent red of the standard Office theme.
const redThemeIndex = 2

// isRedFont reports whether the font color is one of the recognized red
// shades under any of the rgb/indexed/theme encodings.
func isRedFont(font *excelize.Font) bool {
	if font == nil {
		return false
	}

	if font.Color != "" {
		rgb := strings.ToUpper(strings.TrimPrefix(font.Color, "#"))
		return redFontColors[rgb] || redFontColors["FF"+rgb]
	}
	if font.ColorIndexed > 0 {
		return redIndexedColors[font.ColorIndexed]
	}
	if font.ColorTheme != nil {
		return *font.ColorTheme == redThemeIndex
	}

	return false
}

// CellFlags carries the visual-inspection outcome for one cell.
type CellFlags struct {
	Highlighted bool
	Comment     string
}

// Classifier reads per-cell formatting and comments from the workbook.
// Any failure while reading is swallowed: a cell that cannot be inspected
// is simply not highlighted and has no comment.
type Classifier struct {
	f        *excelize.File
	comments map[string]map[string]string
}

func NewClassifier(f *excelize.File) *Classifier {
	return &Classifier{
		f:        f,
		comments: make(map[string]map[string]string),
	}
}

// Classify returns the highlight flag and comment text for one cell.
func (c *Classifier) Classify(sheet, cell string) CellFlags {
	if cell == "" {
		return CellFlags{}
	}
	return CellFlags{
		Highlighted: c.highlighted(sheet, cell),
		Comment:     c.sheetComments(sheet)[cell],
	}
}

func (c *Classifier) highlighted(sheet, cell string) bool {
	styleID, err := c.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	style, err := c.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	return isRedFont(style.Font)
}

func (c *Classifier) sheetComments(sheet string) map[string]string {
	if cached, ok := c.comments[sheet]; ok {
		return cached
	}

	byCell := make(map[string]string)
	comments, err := c.f.GetComments(sheet)
	if err == nil {
		for _, comment := range comments {
			byCell[comment.Cell] = commentText(comment)
		}
	}
	c.comments[sheet] = byCell
	return byCell
}

func commentText(comment excelize.Comment) string {
	if comment.Text != "" {
		return comment.Text
	}
	var b strings.Builder
	for _, run := range comment.Paragraph {
		b.WriteString(run.Text)
	}
	return b.String()
}
