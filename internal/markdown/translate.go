package markdown

import "strings"

const (
	checklistMarker     = "[ ]"
	dashChecklistMarker = "- [ ]"
	headingMarker       = "### "
	bulletMarker        = "- "
)

// Translate converts a report written in the constrained Markdown dialect
// (level-3 headings, unchecked checklist items, dash bullets, plain paragraphs)
// into an ordered list of blocks. Every non-blank line yields exactly one block.
func Translate(md string) []Block {
	lines := strings.Split(md, "\n")
	blocks := make([]Block, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if text, ok := checklistText(line); ok {
			blocks = append(blocks, Checklist(text, false))
			continue
		}

		if strings.HasPrefix(line, headingMarker) {
			blocks = append(blocks, Heading(strings.TrimSpace(line[len(headingMarker):])))
			continue
		}

		if isBullet(line) {
			// Consume the run of pure bullets; stop before the first line that is not one.
			blocks = append(blocks, Bullet(bulletText(line)))
			for i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if !isBullet(next) {
					break
				}
				blocks = append(blocks, Bullet(bulletText(next)))
				i++
			}
			continue
		}

		blocks = append(blocks, Paragraph(line))
	}

	return blocks
}

// checklistText reports whether a trimmed line is a checklist item and returns its text.
func checklistText(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, dashChecklistMarker):
		return strings.TrimSpace(line[len(dashChecklistMarker):]), true
	case strings.HasPrefix(line, checklistMarker):
		return strings.TrimSpace(line[len(checklistMarker):]), true
	default:
		return "", false
	}
}

func isBullet(line string) bool {
	if !strings.HasPrefix(line, bulletMarker) {
		return false
	}
	_, checklist := checklistText(line)
	return !checklist
}

func bulletText(line string) string {
	return strings.TrimSpace(line[len(bulletMarker):])
}
