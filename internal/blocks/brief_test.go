package blocks

import (
	"strings"
	"testing"

	"github.com/devingeorge/global-sales-insights/internal/models"
)

func TestBriefMessageLayout(t *testing.T) {
	brief := &models.BriefContent{
		Title:    "Acme Retail Executive Brief",
		Subtitle: "Acme Retail Company • $1.2M AOV",
		Sections: []models.BriefSection{
			{
				Title: "Customer Snapshot",
				Body:  []string{"Summary line."},
				Fields: []models.BriefSectionField{
					{Label: "Industry", Value: "Retail & Consumer Goods"},
				},
			},
			{Title: "Key Contacts", Body: []string{"• *Julia Martinez* — SVP, Stores"}},
		},
	}

	blockList := BriefMessage(brief)

	if blockList[0]["type"] != "header" {
		t.Fatalf("expected a header first, got %+v", blockList[0])
	}
	header := blockList[0]["text"].(map[string]any)
	if header["text"] != "Acme Retail Executive Brief" {
		t.Errorf("unexpected header %v", header["text"])
	}
	if blockList[1]["type"] != "context" {
		t.Errorf("expected a subtitle context block, got %+v", blockList[1])
	}
	if blockList[2]["type"] != "divider" {
		t.Errorf("expected a divider after the subtitle, got %+v", blockList[2])
	}

	// One section block per brief section, in order
	first := blockList[3]["text"].(map[string]any)["text"].(string)
	if !strings.HasPrefix(first, "*Customer Snapshot*") {
		t.Errorf("section title should lead in bold, got %q", first)
	}
	if !strings.Contains(first, "Summary line.") {
		t.Errorf("section body missing: %q", first)
	}
	fields := blockList[3]["fields"].([]map[string]any)
	if len(fields) != 1 || !strings.Contains(fields[0]["text"].(string), "*Industry:*") {
		t.Errorf("unexpected fields %+v", fields)
	}

	second := blockList[4]["text"].(map[string]any)["text"].(string)
	if !strings.HasPrefix(second, "*Key Contacts*") {
		t.Errorf("unexpected second section %q", second)
	}
}

func TestBriefMessageOmitsEmptySubtitle(t *testing.T) {
	blockList := BriefMessage(&models.BriefContent{Title: "Brief"})
	if blockList[1]["type"] != "divider" {
		t.Errorf("expected the divider right after the header, got %+v", blockList[1])
	}
}

func TestCanvasShareMessage(t *testing.T) {
	brief := &models.BriefContent{
		CanvasTitle: "Q3 Account Plan",
		Sections: []models.BriefSection{
			{Title: "Canvas Share", Body: []string{"Sharing canvas *Q3 Account Plan*.", "https://x/F1"}},
		},
	}

	blockList := CanvasShareMessage(brief)
	header := blockList[0]["text"].(map[string]any)
	if header["text"] != "Q3 Account Plan" {
		t.Errorf("header should carry the canvas title, got %v", header["text"])
	}
	if blockList[1]["type"] != "context" {
		t.Errorf("expected the Existing Canvas context block, got %+v", blockList[1])
	}
	body := blockList[2]["text"].(map[string]any)["text"].(string)
	if !strings.Contains(body, "https://x/F1") {
		t.Errorf("share body should include the link, got %q", body)
	}
}
