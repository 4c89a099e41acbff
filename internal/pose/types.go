package pose

// Keypoint is a named 2-D body landmark with a detection confidence score.
// Scores are conventionally in [0,1] but the schema does not enforce a range.
type Keypoint struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
}

// Pose is one detected body instance in a single frame. Keypoint order is
// meaningful (identity is by name, not position) but no fixed keypoint set
// is required.
type Pose struct {
	Keypoints []Keypoint `json:"keypoints"`
	Score     float64    `json:"score"`
}

// AnalysisRequest is the inbound payload for a movement assessment.
// Poses may span multiple frames or subjects; at least one pose is
// required for the request to be processed.
type AnalysisRequest struct {
	Poses     []Pose `json:"poses"`
	Timestamp int64  `json:"timestamp"`
}

// FeedbackItem is one piece of human-readable feedback. Type is a free-form
// tag — conventionally "good" or "improve" — that consumers may render
// differently.
type FeedbackItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// AnalysisResponse is the movement-quality assessment. Scores are intended
// to be in [0,100]; the schema checks types, not ranges.
type AnalysisResponse struct {
	Overall      int            `json:"overall"`
	Accuracy     int            `json:"accuracy"`
	Coordination int            `json:"coordination"`
	Stability    int            `json:"stability"`
	Feedback     []FeedbackItem `json:"feedback"`
	Suggestions  []string       `json:"suggestions"`
}
