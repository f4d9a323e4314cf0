package entity

// CropRecommendation is one structured suggestion from the advisory model.
type CropRecommendation struct {
	CropName         string `json:"cropName"`
	Reason           string `json:"reason"`
	ExpectedYield    string `json:"expectedYield"`
	MarketTrend      string `json:"marketTrend"`
	FertilizerAdvice string `json:"fertilizerAdvice,omitempty"`
	IrrigationAdvice string `json:"irrigationAdvice,omitempty"`
}

// PestAnalysis is the structured diagnosis of a leaf image.
// Confidence is in [0, 1]. Disease is "Healthy" for a healthy plant.
type PestAnalysis struct {
	Disease            string  `json:"disease"`
	Confidence         float64 `json:"confidence"`
	Description        string  `json:"description"`
	RecommendedAction  string  `json:"recommendedAction"`
	PreventiveMeasures string  `json:"preventiveMeasures"`
}

// MarketForecast is the model's price outlook for a crop in a region.
type MarketForecast struct {
	Prediction7Day  string `json:"prediction7day"`
	Reason7Day      string `json:"reason7day"`
	Prediction30Day string `json:"prediction30day"`
	Reason30Day     string `json:"reason30day"`
}

// ChatSender distinguishes the two sides of an advisory conversation.
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderAI   ChatSender = "ai"
)

// ChatMessage is one turn in the advisory chat.
type ChatMessage struct {
	ID     string     `json:"id"`
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}
