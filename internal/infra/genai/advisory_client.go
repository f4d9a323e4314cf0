// Package genai implements the advisory boundary on Google's Gemini API.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"saathi/config"
	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// advisoryClient implements service.AdvisoryService against the Gemini API.
// Structured requests constrain the response with a JSON schema; the chat
// keeps one session per target language and recreates it on language change.
type advisoryClient struct {
	client *genai.Client
	model  string

	chatMu   sync.Mutex
	chat     *genai.Chat
	chatLang entity.Language
}

// NewAdvisoryClient is the constructor for advisoryClient.
func NewAdvisoryClient(ctx context.Context, cfg *config.Config) (service.AdvisoryService, error) {
	if cfg.GenAI == nil || cfg.GenAI.APIKey == "" {
		return nil, errors.New("genai api key must be provided")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GenAI.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	model := cfg.GenAI.Model
	if model == "" {
		model = defaultModel
	}

	return &advisoryClient{client: client, model: model}, nil
}

var cropRecommenderSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"cropName":         {Type: genai.TypeString, Description: "Name of the recommended crop."},
			"reason":           {Type: genai.TypeString, Description: "Detailed reason for recommending this crop based on the inputs."},
			"expectedYield":    {Type: genai.TypeString, Description: "Expected yield in tonnes per hectare."},
			"marketTrend":      {Type: genai.TypeString, Description: "Current market trend for this crop (e.g., High Demand, Stable, Volatile)."},
			"fertilizerAdvice": {Type: genai.TypeString, Description: "Specific fertilizer recommendation based on conditions."},
			"irrigationAdvice": {Type: genai.TypeString, Description: "Specific irrigation advice."},
		},
		Required: []string{"cropName", "reason", "expectedYield", "marketTrend"},
	},
}

var pestAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"disease":            {Type: genai.TypeString, Description: "Name of the identified plant disease or pest. If healthy, state 'Healthy'."},
		"confidence":         {Type: genai.TypeNumber, Description: "Confidence score (0.0 to 1.0) of the identification."},
		"description":        {Type: genai.TypeString, Description: "A brief description of the disease and its symptoms."},
		"recommendedAction":  {Type: genai.TypeString, Description: "Immediate actions to take, including specific fertilizer or pesticide names if applicable."},
		"preventiveMeasures": {Type: genai.TypeString, Description: "Long-term preventive measures to avoid future outbreaks."},
	},
	Required: []string{"disease", "confidence", "description", "recommendedAction", "preventiveMeasures"},
}

var marketForecastSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"prediction7day":  {Type: genai.TypeString, Description: "Predicted price range per quintal for the next 7 days (e.g., '₹2280 - ₹2350')."},
		"reason7day":      {Type: genai.TypeString, Description: "Brief reason for the 7-day prediction based on trends."},
		"prediction30day": {Type: genai.TypeString, Description: "Predicted price range per quintal for the next 30 days (e.g., '₹2300 - ₹2400')."},
		"reason30day":     {Type: genai.TypeString, Description: "Brief reason for the 30-day prediction based on market factors."},
	},
	Required: []string{"prediction7day", "reason7day", "prediction30day", "reason30day"},
}

// RecommendCrops asks for the top 3 crops for the conditions.
func (c *advisoryClient) RecommendCrops(ctx context.Context, cond service.CropConditions) ([]entity.CropRecommendation, error) {
	var sb strings.Builder
	sb.WriteString("Analyze the following agricultural conditions for a small farm in India and recommend the top 3 most suitable crops.\n")
	sb.WriteString("Also provide specific fertilizer and irrigation advice tailored to the sensor data.\n\n")
	sb.WriteString("Conditions:\n")
	fmt.Fprintf(&sb, "- Soil Type: %s\n", cond.SoilType)
	fmt.Fprintf(&sb, "- Water Availability: %s\n", cond.WaterAvailability)
	fmt.Fprintf(&sb, "- Season: %s\n", cond.Season)
	fmt.Fprintf(&sb, "- Previously Cultivated Crop: %s\n", cond.PreviousCrop)

	if cond.Sensor != nil {
		sb.WriteString("\nReal-time IoT Sensor Data:\n")
		fmt.Fprintf(&sb, "- Soil pH: %.1f\n", cond.Sensor.PH)
		fmt.Fprintf(&sb, "- Soil Moisture: %.0f%%\n", cond.Sensor.Moisture)
		fmt.Fprintf(&sb, "- Ambient Temperature: %.0f°C\n", cond.Sensor.Temperature)
		fmt.Fprintf(&sb, "- Nitrogen (N): %.0f mg/kg\n", cond.Sensor.Nitrogen)
		fmt.Fprintf(&sb, "- Phosphorus (P): %.0f mg/kg\n", cond.Sensor.Phosphorus)
		fmt.Fprintf(&sb, "- Potassium (K): %.0f mg/kg\n", cond.Sensor.Potassium)
		sb.WriteString("\nBased on this sensor data, refine the recommendations. Provide specific, actionable advice.\n")
		sb.WriteString("- If N, P, or K levels are low, suggest specific fertilizers (e.g., 'Low Nitrogen: Apply Urea.').\n")
		sb.WriteString("- If moisture is critically low (e.g., < 30%), strongly advise for immediate irrigation.\n")
	}

	sb.WriteString("\nProvide a detailed analysis for each recommendation, including the reason, expected yield, current market trends, and specific, actionable fertilizer and irrigation advice based on all available data.")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(sb.String()), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   cropRecommenderSchema,
		Temperature:      genai.Ptr(float32(0.5)),
	})
	if err != nil {
		return nil, domainerrors.NewExternalServiceError("Failed to get crop recommendations. Please try again later.")
	}

	var recommendations []entity.CropRecommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &recommendations); err != nil {
		return nil, domainerrors.NewMalformedResponseError("Failed to get crop recommendations. The AI model returned an unexpected format.")
	}

	return recommendations, nil
}

// AnalyzePest diagnoses a leaf image.
func (c *advisoryClient) AnalyzePest(ctx context.Context, image []byte, mimeType string) (*entity.PestAnalysis, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText("Analyze this image of a plant leaf. Identify any diseases or pests. If the plant is healthy, state that. Provide a confidence score, a description of the issue, recommended immediate actions (including specific fertilizer or pesticide names), and long-term preventive measures."),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   pestAnalysisSchema,
		Temperature:      genai.Ptr(float32(0.2)),
	})
	if err != nil {
		return nil, domainerrors.NewExternalServiceError("Failed to analyze the image. Please try again later.")
	}

	var analysis entity.PestAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &analysis); err != nil {
		return nil, domainerrors.NewMalformedResponseError("Failed to analyze the image. The AI model returned an unexpected format.")
	}

	return &analysis, nil
}

// ForecastMarket predicts 7- and 30-day price ranges from history.
func (c *advisoryClient) ForecastMarket(ctx context.Context, crop, region string, history []entity.PricePoint) (*entity.MarketForecast, error) {
	// The full 90 days would blow the prompt up for no benefit; the last
	// month carries the trend.
	recent := history
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Act as an expert agricultural market analyst for Indian mandi prices.\n")
	fmt.Fprintf(&sb, "Predict the price of %s in the %s region for the next 7 and 30 days, based on this recent price history (₹ per quintal):\n\n", crop, region)
	for _, point := range recent {
		fmt.Fprintf(&sb, "%s: %d\n", point.Date, point.Price)
	}
	sb.WriteString("\nProvide a brief, farmer-friendly reason for each prediction.")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(sb.String()), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   marketForecastSchema,
		Temperature:      genai.Ptr(float32(0.3)),
	})
	if err != nil {
		return nil, domainerrors.NewExternalServiceError("Failed to get market prediction. Please try again later.")
	}

	var forecast entity.MarketForecast
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &forecast); err != nil {
		return nil, domainerrors.NewMalformedResponseError("Failed to get market prediction. The AI model returned an unexpected format.")
	}

	return &forecast, nil
}

// WeatherAdvisory turns a forecast into a short actionable advisory text.
func (c *advisoryClient) WeatherAdvisory(ctx context.Context, report *entity.WeatherReport) (string, error) {
	var sb strings.Builder
	sb.WriteString("Act as an expert agricultural advisor for an Indian farmer.\n")
	sb.WriteString("Given the following weather forecast, provide a short, actionable advisory (2-3 sentences).\n")
	sb.WriteString("Focus on tasks like irrigation, fertilizer/pesticide application, and harvesting.\n")
	sb.WriteString("Keep the advice concise and easy to understand.\n\n")
	sb.WriteString("Weather Forecast:\n")
	fmt.Fprintf(&sb, "Current: %s, %d°C\n", report.Current.Description, report.Current.TempC)
	for _, day := range report.Daily {
		fmt.Fprintf(&sb, "%s: %s, Temp %d°C to %d°C.\n", day.Day, day.Description, day.MinC, day.MaxC)
	}
	sb.WriteString("\nAdvisory:")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(sb.String()), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	})
	if err != nil {
		return "", domainerrors.NewExternalServiceError("Failed to generate the weather advisory. Please try again later.")
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Chat sends one message to the language-keyed assistant session. The session
// is recreated whenever the requested language differs from the last one.
func (c *advisoryClient) Chat(ctx context.Context, message string, lang entity.Language) (string, error) {
	c.chatMu.Lock()
	defer c.chatMu.Unlock()

	if c.chat == nil || c.chatLang != lang {
		chat, err := c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(chatSystemInstruction(lang), genai.RoleUser),
		}, nil)
		if err != nil {
			return "", domainerrors.NewExternalServiceError("Sorry, I am having trouble connecting. Please try again later.")
		}
		c.chat = chat
		c.chatLang = lang
	}

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		// Drop the session so the next attempt starts clean.
		c.chat = nil

		return "", domainerrors.NewExternalServiceError("Sorry, I am having trouble connecting. Please try again later.")
	}

	return strings.TrimSpace(resp.Text()), nil
}

func chatSystemInstruction(lang entity.Language) string {
	languageName := entity.LanguageName(lang)

	return fmt.Sprintf(`You are an AI-powered multilingual farming assistant called Krishi Mitra, part of the Kisan Saathi app.
Your job is to understand and respond *only* in the language specified, which is: %[1]s.

Core Rules:
1. Strict Language Adherence: Generate your entire response exclusively in %[1]s. Do not use English or any other language, unless a specific agricultural term has no common native translation.
2. No Formatting: Your response must be plain text. Do not use markdown, asterisks, or any special formatting characters.
3. Farmer-Friendly Tone: Use simple, clear, and conversational language suitable for rural users and farmers who may have limited literacy.
4. Accurate Terminology: Ensure agricultural terms (crop names, fertilizers, pests) are accurate in the target language.

Your current task is to respond to the user's query in %[1]s.`, languageName)
}
