package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ecoloop/dto"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const verifierFallbackMessage = "Could not verify task at this time."

// generativeModel is the slice of *genai.GenerativeModel the verifier uses.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// TaskVerifier asks a multimodal Gemini model whether submitted media
// proves completion of an eco-task. Every call is independent: no retry,
// no caching, no timeout beyond the transport default.
type TaskVerifier struct {
	model generativeModel
}

// Verifier is the process-wide task verifier, set up by InitVerifier
// before the router starts serving.
var Verifier *TaskVerifier

// InitVerifier builds the shared verifier. A missing API key is a warning,
// not a fatal: the verifier then answers every request with a degraded
// result instead of preventing startup.
func InitVerifier(ctx context.Context, apiKey, modelName string) {
	Verifier = &TaskVerifier{}
	if apiKey == "" {
		log.Println("WARNING: GOOGLE_API_KEY is missing; task verification will be unavailable")
		return
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("WARNING: failed to create Gemini client: %v; task verification will be unavailable", err)
		return
	}
	Verifier.model = client.GenerativeModel(modelName)
}

func buildPrompt(taskDescription, taskType string) string {
	return fmt.Sprintf(`You are the AI Validator for the 'EcoLoop' sustainability app.

USER CLAIM:
The user claims to have completed a %s.
Task Description: "%s"

YOUR JOB:
Analyze the attached media (Image or Video) and verify if it provides legitimate proof that this specific task was performed.

PERFORM THESE CHECKS:
1. RELEVANCE: Does the visual content directly show the action described in the task? (e.g., if task is 'Plant a tree', do you see a tree being planted?)
2. AUTHENTICITY: Is this a real photo/video? Check for AI-generated artifacts or obvious fakes.
3. VIDEO ANALYSIS (if applicable): If this is a video, does the action take place within the footage?

Output JSON:
{
    "is_verified": true | false,
    "confidence_score": "High" | "Medium" | "Low",
    "feedback_message": "A short, encouraging message for the user. If failed, explain why.",
    "rejection_reason": "Specific reason why verification failed (null if verified, max 1 sentence).",
    "proof_detected": "Brief description of what you saw (e.g., 'I see a person holding a reusable bottle')."
}`, taskType, taskDescription)
}

// stripCodeFence removes surrounding triple-backtick markers, with an
// optional language tag after the opening fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

func degraded(class string, err error) dto.VerificationResult {
	result := dto.VerificationResult{
		IsVerified:      false,
		Error:           class,
		FeedbackMessage: verifierFallbackMessage,
	}
	if err != nil {
		result.Details = err.Error()
	}
	return result
}

// Verify submits the media and task claim to the model and parses its
// structured verdict. Failures never escape: transport and parse errors
// both collapse into a well-formed degraded result so the caller always
// has a response body to return.
func (v *TaskVerifier) Verify(ctx context.Context, mediaBytes []byte, mimeType, taskDescription, taskType string) dto.VerificationResult {
	reqID := uuid.NewString()

	if v.model == nil {
		log.Printf("verify %s: AI service not configured", reqID)
		return degraded("AI service not configured", nil)
	}

	prompt := buildPrompt(taskDescription, taskType)
	resp, err := v.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: mediaBytes},
		genai.Text(prompt),
	)
	if err != nil {
		log.Printf("verify %s: model call failed: %v", reqID, err)
		return degraded("AI service unavailable", err)
	}

	text := stripCodeFence(responseText(resp))

	var result dto.VerificationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("verify %s: unparsable model response: %v", reqID, err)
		return degraded("AI response parse failure", err)
	}
	if result.FeedbackMessage == "" {
		result.FeedbackMessage = verifierFallbackMessage
	}
	return result
}
