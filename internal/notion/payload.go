package notion

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jomei/notionapi"
	"github.com/nguyentantai21042004/standup-scribe/internal/markdown"
)

const (
	summaryHeading = "Daily summary"
	// maxRichTextLength is the API limit for one text object's content.
	maxRichTextLength = 2000
	// maxChildren is the API limit for blocks in one request.
	maxChildren = 100
)

// NormalizeDatabaseID strips the dashes of a UUID-formatted database id.
func NormalizeDatabaseID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// pageDate is t in UTC at second precision, which the client renders as RFC 3339 with a Z suffix.
func pageDate(t time.Time) *notionapi.Date {
	d := notionapi.Date(t.UTC().Truncate(time.Second))
	return &d
}

func buildProperties(page Page) notionapi.Properties {
	return notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: splitRichText(page.Title),
		},
		"Date": notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: pageDate(page.Date)},
		},
		"Category": notionapi.SelectProperty{
			Select: notionapi.Option{Name: page.Category},
		},
		"Attendees": notionapi.PeopleProperty{
			People: []notionapi.User{},
		},
	}
}

// buildChildren prepends the summary heading to the converted blocks.
func buildChildren(blocks []markdown.Block) []notionapi.Block {
	children := make([]notionapi.Block, 0, len(blocks)+1)
	children = append(children, toBlock(markdown.Heading(summaryHeading)))
	for _, b := range blocks {
		children = append(children, toBlock(b))
	}
	return children
}

func toBlock(b markdown.Block) notionapi.Block {
	text := splitRichText(b.Text)

	switch b.Kind {
	case markdown.KindHeading:
		out := &notionapi.Heading2Block{BasicBlock: basicBlock(notionapi.BlockTypeHeading2)}
		out.Heading2.RichText = text
		return out
	case markdown.KindBullet:
		out := &notionapi.BulletedListItemBlock{BasicBlock: basicBlock(notionapi.BlockTypeBulletedListItem)}
		out.BulletedListItem.RichText = text
		return out
	case markdown.KindChecklist:
		out := &notionapi.ToDoBlock{BasicBlock: basicBlock(notionapi.BlockTypeToDo)}
		out.ToDo.RichText = text
		out.ToDo.Checked = b.Checked
		return out
	default:
		out := &notionapi.ParagraphBlock{BasicBlock: basicBlock(notionapi.BlockTypeParagraph)}
		out.Paragraph.RichText = text
		return out
	}
}

func basicBlock(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: t}
}

// splitRichText cuts text into segments of at most maxRichTextLength runes.
// Empty text still yields one empty segment.
func splitRichText(text string) []notionapi.RichText {
	if utf8.RuneCountInString(text) <= maxRichTextLength {
		return []notionapi.RichText{textSegment(text)}
	}

	var segments []notionapi.RichText
	runes := []rune(text)
	for start := 0; start < len(runes); start += maxRichTextLength {
		end := start + maxRichTextLength
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, textSegment(string(runes[start:end])))
	}
	return segments
}

func textSegment(s string) notionapi.RichText {
	return notionapi.RichText{Text: &notionapi.Text{Content: s}}
}

// batches splits children into request-sized groups.
func batches(children []notionapi.Block) [][]notionapi.Block {
	var out [][]notionapi.Block
	for len(children) > maxChildren {
		out = append(out, children[:maxChildren])
		children = children[maxChildren:]
	}
	if len(children) > 0 {
		out = append(out, children)
	}
	return out
}
