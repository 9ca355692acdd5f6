package blocks

import (
	"fmt"
	"strings"

	"github.com/devingeorge/global-sales-insights/internal/models"
)

// BriefMessage renders an assembled brief as a DM message: header, optional
// subtitle, then one section block per brief section in order.
func BriefMessage(brief *models.BriefContent) []map[string]any {
	blockList := []map[string]any{
		{
			"type": "header",
			"text": PlainText(brief.Title),
		},
	}
	if brief.Subtitle != "" {
		blockList = append(blockList, ContextText(brief.Subtitle))
	}
	blockList = append(blockList, Divider())

	for _, section := range brief.Sections {
		text := "*" + section.Title + "*"
		if len(section.Body) > 0 {
			text += "\n" + strings.Join(section.Body, "\n")
		}
		block := MarkdownSection(text)
		if len(section.Fields) > 0 {
			fields := make([]map[string]any, 0, len(section.Fields))
			for _, field := range section.Fields {
				fields = append(fields, Mrkdwn(fmt.Sprintf("*%s:*\n%s", field.Label, field.Value)))
			}
			block["fields"] = fields
		}
		blockList = append(blockList, block)
	}
	return blockList
}

// CanvasShareMessage renders the canvas-share confirmation
func CanvasShareMessage(brief *models.BriefContent) []map[string]any {
	blockList := []map[string]any{
		{
			"type": "header",
			"text": PlainText(brief.CanvasTitle),
		},
		ContextText("Existing Canvas"),
	}
	for _, section := range brief.Sections {
		blockList = append(blockList, MarkdownSection(strings.Join(section.Body, "\n")))
	}
	return blockList
}
