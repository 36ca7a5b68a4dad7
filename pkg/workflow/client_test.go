package workflow_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talent-sift/internal/domain"
	"talent-sift/pkg/apperror"
	"talent-sift/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() domain.WorkflowPayload {
	return domain.WorkflowPayload{
		OrgID:           1,
		ExeName:         "run1",
		WorkflowID:      domain.WorkflowInterviewQuestions,
		InstructionKey:  "job_description",
		InstructionText: "Looking for Backend Engineer",
	}
}

func TestSubmitRequestShape(t *testing.T) {
	var gotMethod, gotData, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotData = r.FormValue("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"result":["Generated text"]}}`))
	}))
	defer srv.Close()

	client := workflow.NewClient(srv.URL, 5*time.Second)
	result, err := client.Submit(context.Background(), samplePayload())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.JSONEq(t, `{"org_id":1,"exe_name":"run1","workflow_id":"interview_questions","job_description":"Looking for Backend Engineer"}`, gotData)
	assert.Equal(t, domain.TextResult("Generated text"), result)
}

func TestSubmitResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    domain.WorkflowResult
		wantErr string
	}{
		{
			name:   "Should parse a question list",
			status: http.StatusOK,
			body:   `{"data":{"result":[[{"question":"Q one","answer":"A one"},{"question":"Q two","answer":"A two"}]]}}`,
			want: domain.QAListResult([]domain.QAPair{
				{Question: "Q one", Answer: "A one"},
				{Question: "Q two", Answer: "A two"},
			}),
		},
		{
			name:   "Should return an empty result when data.result is missing",
			status: http.StatusOK,
			body:   `{"data":{}}`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should return an empty result when data is missing",
			status: http.StatusOK,
			body:   `{"message":"ok"}`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should return an empty result for a top-level array",
			status: http.StatusOK,
			body:   `[]`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should return an empty result for a top-level string",
			status: http.StatusOK,
			body:   `"ok"`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should return an empty result for null",
			status: http.StatusOK,
			body:   `null`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should return an empty result when data is not an object",
			status: http.StatusOK,
			body:   `{"data":5,"message":["not","text"]}`,
			want:   domain.WorkflowResult{},
		},
		{
			name:   "Should read the result even when other fields have unexpected types",
			status: http.StatusOK,
			body:   `{"message":42,"data":{"result":["Title: Go Developer"]}}`,
			want:   domain.TextResult("Title: Go Developer"),
		},
		{
			name:    "Should surface the server message on failure",
			status:  http.StatusBadRequest,
			body:    `{"message":"bad payload"}`,
			wantErr: "bad payload",
		},
		{
			name:    "Should fall back to a status message without a server message",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: "Upload failed with status 500",
		},
		{
			name:    "Should fall back to a status message on a non-JSON error body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: "Upload failed with status 502",
		},
		{
			name:    "Should fail on malformed JSON in a success response",
			status:  http.StatusOK,
			body:    `{"data":`,
			wantErr: "unexpected end of JSON input",
		},
		{
			name:    "Should fail on a non-JSON success response",
			status:  http.StatusOK,
			body:    `<html>ok</html>`,
			wantErr: "invalid character '<' looking for beginning of value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			result, err := workflow.NewClient(srv.URL, 0).Submit(context.Background(), samplePayload())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperror.IsRequestFailed(err))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := workflow.NewClient(url, time.Second).Submit(context.Background(), samplePayload())
	require.Error(t, err)
	assert.True(t, apperror.IsRequestFailed(err))
	assert.NotEmpty(t, err.Error())
}

func TestParseResult(t *testing.T) {
	t.Run("Should keep whitespace in text results", func(t *testing.T) {
		r := workflow.ParseResult(json.RawMessage(`"Line one\n\n  Line two"`))
		assert.Equal(t, domain.ResultText, r.Kind)
		assert.Equal(t, "Line one\n\n  Line two", r.Text)
	})

	t.Run("Should treat null and empty values as no result", func(t *testing.T) {
		assert.True(t, workflow.ParseResult(json.RawMessage(`null`)).IsEmpty())
		assert.True(t, workflow.ParseResult(nil).IsEmpty())
		assert.True(t, workflow.ParseResult(json.RawMessage(`""`)).IsEmpty())
		assert.True(t, workflow.ParseResult(json.RawMessage(`[]`)).IsEmpty())
	})

	t.Run("Should keep non-object list items as blank blocks", func(t *testing.T) {
		r := workflow.ParseResult(json.RawMessage(`[{"question":"Q"}, 42]`))
		assert.Equal(t, domain.ResultQAList, r.Kind)
		assert.Equal(t, []domain.QAPair{{Question: "Q"}, {}}, r.Pairs)
	})

	t.Run("Should keep other JSON values as text", func(t *testing.T) {
		r := workflow.ParseResult(json.RawMessage(`{"summary":"x"}`))
		assert.Equal(t, domain.TextResult(`{"summary":"x"}`), r)
	})
}
