package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dnkhanh/hireflow/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService implements ScoringOracle, FollowupGenerator and Summarizer
// against the Gemini API. All prompts request strict JSON and every response
// is parsed and validated; a malformed response is an error, never a default.
type GeminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (*GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.GeminiModel)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	return &GeminiLLMService{client: model, cfg: cfg}, nil
}

func (s *GeminiLLMService) generateJSON(ctx context.Context, prompt string, out any) error {
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	if raw.Len() == 0 {
		return fmt.Errorf("gemini returned no text content")
	}

	if err := json.Unmarshal([]byte(raw.String()), out); err != nil {
		log.Warn().Err(err).Str("raw", raw.String()).Msg("Failed to parse Gemini JSON response")
		return fmt.Errorf("could not parse gemini response: %w", err)
	}
	return nil
}

func (s *GeminiLLMService) Score(ctx context.Context, questionText, answerText string, competencies []string) (*ScoreResult, error) {
	compStr := "overall quality"
	if len(competencies) > 0 {
		compStr = strings.Join(competencies, ", ")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an expert recruiter. Score the candidate's answer to the interview question.\n\n")
	prompt.WriteString(fmt.Sprintf("Question:\n\"\"\"%s\"\"\"\n\n", questionText))
	prompt.WriteString(fmt.Sprintf("Candidate answer:\n\"\"\"%s\"\"\"\n\n", answerText))
	prompt.WriteString("You should:\n")
	prompt.WriteString("- Evaluate from 1 to 5 (5 = excellent, 1 = very poor).\n")
	prompt.WriteString(fmt.Sprintf("- Evaluate the following competencies: %s.\n", compStr))
	prompt.WriteString("- Provide short, constructive feedback.\n\n")
	prompt.WriteString("Return ONLY valid JSON with this structure:\n")
	prompt.WriteString(`{"overall_score": <int 1-5>, "competency_scores": {"<competency_name>": <int 1-5>}, "feedback": "<short textual feedback>"}`)

	var result ScoreResult
	if err := s.generateJSON(ctx, prompt.String(), &result); err != nil {
		return nil, err
	}
	if result.OverallScore < 1 {
		result.OverallScore = 1
	}
	if result.OverallScore > 5 {
		result.OverallScore = 5
	}
	if result.Feedback == "" {
		return nil, fmt.Errorf("gemini scoring response missing feedback")
	}
	return &result, nil
}

func (s *GeminiLLMService) Generate(ctx context.Context, baseQuestion, answerText string, competencies []string, score *ScoreResult, round int) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are an expert interviewer running a structured interview. The candidate's answer was not strong enough, so you will ask ONE short follow-up probe.\n\n")
	prompt.WriteString(fmt.Sprintf("Base question:\n\"\"\"%s\"\"\"\n\n", baseQuestion))
	prompt.WriteString(fmt.Sprintf("Candidate answer:\n\"\"\"%s\"\"\"\n\n", answerText))
	prompt.WriteString(fmt.Sprintf("Scoring: overall %d/5, feedback: %s\n", score.OverallScore, score.Feedback))
	if len(competencies) > 0 {
		prompt.WriteString(fmt.Sprintf("Competencies under evaluation: %s\n", strings.Join(competencies, ", ")))
	}
	prompt.WriteString(fmt.Sprintf("This will be follow-up number %d against this question.\n\n", round+1))
	prompt.WriteString("Ask for the missing specifics: concrete steps, the candidate's personal role, or measurable impact.\n")
	prompt.WriteString("Return ONLY valid JSON: {\"followup_question\": \"<one question>\"}")

	var result struct {
		FollowupQuestion string `json:"followup_question"`
	}
	if err := s.generateJSON(ctx, prompt.String(), &result); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.FollowupQuestion), nil
}

func (s *GeminiLLMService) Summarize(ctx context.Context, jobTitle, jobDescription string, qa []QAItem) (*SummaryResult, error) {
	var transcript strings.Builder
	for i, item := range qa {
		kind := "Q"
		if item.IsFollowup {
			kind = fmt.Sprintf("Follow-up (round %d)", item.FollowupRound)
		}
		transcript.WriteString(fmt.Sprintf("\n%s%d: %s\nA%d: %s\n", kind, i+1, item.Question, i+1, item.Answer))
		if item.Score != nil {
			transcript.WriteString(fmt.Sprintf("Score: %d\n", *item.Score))
		}
		if len(item.CompetencyScores) > 0 {
			compJSON, _ := json.Marshal(item.CompetencyScores)
			transcript.WriteString(fmt.Sprintf("Competency scores: %s\n", compJSON))
		}
	}

	var prompt strings.Builder
	prompt.WriteString("You are an expert recruiter summarising a structured interview.\n\n")
	prompt.WriteString(fmt.Sprintf("Job title: %s\n\nJob description:\n%s\n\n", jobTitle, jobDescription))
	prompt.WriteString(fmt.Sprintf("Interview transcript:\n%s\n", transcript.String()))
	prompt.WriteString("\nTask:\n")
	prompt.WriteString(`- Provide an overall recommendation from this set: ["Strong Hire","Hire","Leaning Hire","Neutral","Leaning No","No Hire"].` + "\n")
	prompt.WriteString("- Provide a short overall commentary (3-6 sentences).\n")
	prompt.WriteString("- Provide average numeric score across questions.\n")
	prompt.WriteString("- Provide average score per competency.\n\n")
	prompt.WriteString("Return ONLY valid JSON:\n")
	prompt.WriteString(`{"recommendation": "<one of the allowed values>", "overall_commentary": "<text>", "average_score": <float>, "competency_summary": {"<competency>": <float>}}`)

	var result SummaryResult
	if err := s.generateJSON(ctx, prompt.String(), &result); err != nil {
		return nil, err
	}

	valid := false
	for _, rec := range AllowedRecommendations {
		if result.Recommendation == rec {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("gemini summary returned unknown recommendation %q", result.Recommendation)
	}
	return &result, nil
}
