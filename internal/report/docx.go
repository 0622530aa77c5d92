package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/standup-scribe/internal/markdown"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 14
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// SaveDocx renders translated report blocks into a styled .docx file.
func SaveDocx(path, title string, blocks []markdown.Block) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)

	for _, b := range blocks {
		p := doc.AddParagraph("")
		switch b.Kind {
		case markdown.KindHeading:
			addStyledRun(p, b.Text, true, headingSize)
		case markdown.KindBullet:
			addRichText(p, "• "+b.Text)
		case markdown.KindChecklist:
			box := "☐ "
			if b.Checked {
				box = "☑ "
			}
			addRichText(p, box+b.Text)
		default:
			addRichText(p, b.Text)
		}
	}

	return doc.SaveTo(path)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText writes text as runs, rendering **bold** spans in bold.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
