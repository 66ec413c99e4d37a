package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Image is an illustration attached to a step
type Image struct {
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url"`
}

// CodeSnippet is an annotated piece of example code
type CodeSnippet struct {
	Title       string `json:"title,omitempty"`
	Code        string `json:"code"`
	Explanation string `json:"explanation,omitempty"`
	Output      string `json:"output,omitempty"`
	Language    string `json:"language"` // defaults to "javascript"
}

// Activity is a quiz-like exercise within a step
type Activity struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	StarterCode   string   `json:"starterCode,omitempty"`
	Solution      string   `json:"solution,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Step is a single lesson unit belonging to exactly one course
type Step struct {
	gorm.Model
	CourseID   uint   `json:"courseId" gorm:"index;not null"`
	StepNumber int    `json:"stepNumber" gorm:"not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`

	Images       datatypes.JSONSlice[Image]       `json:"images"`
	CodeSnippets datatypes.JSONSlice[CodeSnippet] `json:"codeSnippets"`
	Activities   datatypes.JSONSlice[Activity]    `json:"activities"`
}
