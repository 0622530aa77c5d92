package markdown

// Kind identifies the type of a content block.
type Kind int

const (
	KindHeading Kind = iota
	KindBullet
	KindChecklist
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindChecklist:
		return "checklist"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Block is one typed unit of report content. Checked is only meaningful for KindChecklist.
type Block struct {
	Kind    Kind
	Text    string
	Checked bool
}

func Heading(text string) Block {
	return Block{Kind: KindHeading, Text: text}
}

func Bullet(text string) Block {
	return Block{Kind: KindBullet, Text: text}
}

func Checklist(text string, checked bool) Block {
	return Block{Kind: KindChecklist, Text: text, Checked: checked}
}

func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}
