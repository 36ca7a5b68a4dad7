package domain

import (
	"context"
	"encoding/json"
	"strings"
)

// Workflow identifiers understood by the execution API
const (
	WorkflowInterviewQuestions = "interview_questions"
	WorkflowJobDescription     = "jd_maker"
)

// WorkflowPayload is the object sent upstream, JSON-encoded, in the "data" form field.
// InstructionKey names the JSON key holding InstructionText; the two workflows
// read the instruction from different keys.
type WorkflowPayload struct {
	OrgID           int    `json:"org_id"`
	ExeName         string `json:"exe_name"`
	WorkflowID      string `json:"workflow_id"`
	InstructionKey  string `json:"-"`
	InstructionText string `json:"-"`
}

// MarshalJSON writes the instruction under InstructionKey after the fixed fields
func (p WorkflowPayload) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	fields := []struct {
		key   string
		value interface{}
	}{
		{"org_id", p.OrgID},
		{"exe_name", p.ExeName},
		{"workflow_id", p.WorkflowID},
		{p.InstructionKey, p.InstructionText},
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// ResultKind discriminates WorkflowResult
type ResultKind string

const (
	ResultEmpty  ResultKind = ""
	ResultText   ResultKind = "text"
	ResultQAList ResultKind = "qa_list"
)

// QAPair is one generated interview question with its suggested answer
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// WorkflowResult is either free text or an ordered list of question/answer pairs.
// The kind is decided once, when the upstream response is parsed.
type WorkflowResult struct {
	Kind  ResultKind `json:"kind"`
	Text  string     `json:"text,omitempty"`
	Pairs []QAPair   `json:"pairs,omitempty"`
}

// TextResult wraps generated free text
func TextResult(text string) WorkflowResult {
	if text == "" {
		return WorkflowResult{}
	}
	return WorkflowResult{Kind: ResultText, Text: text}
}

// QAListResult wraps generated question/answer pairs
func QAListResult(pairs []QAPair) WorkflowResult {
	if len(pairs) == 0 {
		return WorkflowResult{}
	}
	return WorkflowResult{Kind: ResultQAList, Pairs: pairs}
}

// IsEmpty reports whether there is nothing to display
func (r WorkflowResult) IsEmpty() bool {
	return r.Kind == ResultEmpty
}

// WorkflowClient submits a payload to the remote workflow execution API
type WorkflowClient interface {
	Submit(ctx context.Context, payload WorkflowPayload) (WorkflowResult, error)
}

// SkillsKey is the fixed key under which parsed skills are cached
const SkillsKey = "keySkills"

// SkillsStore caches the skills of the last successful submission per session
type SkillsStore interface {
	Save(ctx context.Context, sessionID string, skills []string) error
	Get(ctx context.Context, sessionID string) ([]string, error)
}
