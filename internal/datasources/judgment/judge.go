// Package judgment turns a text generation model into a structured suitability judge.
package judgment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrInvalidJudgment = errors.New("invalid judgment response")

// TextGenerator sends a system and user prompt to a model that has been asked to reply with JSON.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const responseSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "reason": {"type": "string"}
  }
}`

const systemPrompt = `You are an experienced technical recruiter scoring how well a candidate fits a job.
Respond with a single JSON object and nothing else, in the form
{"score": <number from 0 to 100>, "reason": "<one or two sentences>"}.
0 means no fit at all and 100 means an ideal fit. Score consistently: the same
candidate and job must always receive the same score.`

// Judge scores candidate/job pairs by prompting a TextGenerator and validating its JSON reply.
type Judge struct {
	Generator TextGenerator
	schema    *jsonschema.Schema
}

var _ datasources.SuitabilityJudge = (*Judge)(nil)

func NewJudge(generator TextGenerator) (*Judge, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("judgment.json", strings.NewReader(responseSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("judgment.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Judge{Generator: generator, schema: schema}, nil
}

func (j *Judge) JudgeSuitability(ctx context.Context, req domain.JudgmentRequest) (domain.Judgment, error) {
	raw, err := j.Generator.GenerateJSON(ctx, systemPrompt, BuildPrompt(req))
	if err != nil {
		return domain.Judgment{}, fmt.Errorf("generating judgment: %w", err)
	}

	return j.parse(raw)
}

type judgmentResponse struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

func (j *Judge) parse(raw string) (domain.Judgment, error) {
	data := []byte(extractJSON(raw))

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Judgment{}, fmt.Errorf("%w: %w", ErrInvalidJudgment, err)
	}
	if err := j.schema.Validate(v); err != nil {
		return domain.Judgment{}, fmt.Errorf("%w: %w", ErrInvalidJudgment, err)
	}

	var resp judgmentResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return domain.Judgment{}, fmt.Errorf("%w: %w", ErrInvalidJudgment, err)
	}

	return domain.Judgment{Score: resp.Score, Reason: strings.TrimSpace(resp.Reason)}, nil
}

// BuildPrompt renders the user prompt for a judgment request.
func BuildPrompt(req domain.JudgmentRequest) string {
	var b bytes.Buffer
	b.WriteString("Evaluation focus:\n")
	b.WriteString(req.Profile.Focus)
	b.WriteString("\n\n## Job\n")
	b.WriteString(req.Job.ProfileText())
	b.WriteString("\n\n## Candidate\n")
	b.WriteString(req.Candidate.ProfileText())
	b.WriteString("\n")
	return b.String()
}

// extractJSON strips markdown code fences and any prose around the outermost JSON object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(raw)
	}
	return raw[start : end+1]
}
