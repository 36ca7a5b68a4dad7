package web

import (
	"fmt"
	"strings"

	"talent-sift/internal/domain"
)

// QABlock is one numbered question/answer block
type QABlock struct {
	Number   int
	Question string
	Answer   string
}

// ResultView is what the result card shows. Visible is false when there is
// nothing to display, and the card is left out of the page.
type ResultView struct {
	Visible bool
	IsList  bool
	Blocks  []QABlock
	Text    string
}

// RenderResult decides the display shape of a workflow result
func RenderResult(result domain.WorkflowResult) ResultView {
	switch result.Kind {
	case domain.ResultQAList:
		blocks := make([]QABlock, len(result.Pairs))
		for i, qa := range result.Pairs {
			blocks[i] = QABlock{Number: i + 1, Question: qa.Question, Answer: qa.Answer}
		}
		return ResultView{Visible: true, IsList: true, Blocks: blocks}
	case domain.ResultText:
		return ResultView{Visible: true, Text: result.Text}
	default:
		return ResultView{}
	}
}

// PlainText renders a result for logs and API clients: numbered Q/A blocks or the text itself
func PlainText(result domain.WorkflowResult) string {
	view := RenderResult(result)
	if !view.IsList {
		return view.Text
	}

	var b strings.Builder
	for i, block := range view.Blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Q%d: %s\n%s", block.Number, block.Question, block.Answer)
	}
	return b.String()
}
