package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestResponseText(t *testing.T) {
	cases := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name: "single_part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: `{"score": 64}`}}}},
				},
			},
			want: `{"score": 64}`,
		},
		{
			name: "split_parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: `{"score": `}, nil, {Text: `64}`}}}},
				},
			},
			want: `{"score": 64}`,
		},
		{
			name: "no_content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{nil, {Content: nil}},
			},
			wantErr: true,
		},
		{
			name:    "nil_response",
			resp:    nil,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := responseText(tc.resp)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
