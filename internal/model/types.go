package model

// Result is the terminal artifact of one classification request. Shape
// describes the decoded image's original dimensions as "(H, W, 3)".
type Result struct {
	Filename   string  `json:"filename"`
	Prediction string  `json:"prediction"`
	Confidence float32 `json:"confidence"`
	ClassIndex int     `json:"class_index"`
	Shape      string  `json:"shape"`
}
