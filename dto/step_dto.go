package dto

import courseModels "coursecraft/models/course"

// CreateStepRequest is the payload for step creation under a course
type CreateStepRequest struct {
	StepNumber   int                        `json:"stepNumber"`
	Title        string                     `json:"title"`
	Content      string                     `json:"content"`
	Images       []courseModels.Image       `json:"images"`
	CodeSnippets []courseModels.CodeSnippet `json:"codeSnippets"`
	Activities   []courseModels.Activity    `json:"activities"`
}

// UpdateStepRequest is a partial step patch; nil fields stay untouched.
// Slice fields are pointers so an absent array and an explicit empty array
// can be told apart.
type UpdateStepRequest struct {
	StepNumber   *int                        `json:"stepNumber"`
	Title        *string                     `json:"title"`
	Content      *string                     `json:"content"`
	Images       *[]courseModels.Image       `json:"images"`
	CodeSnippets *[]courseModels.CodeSnippet `json:"codeSnippets"`
	Activities   *[]courseModels.Activity    `json:"activities"`
}

// StepOrderItem is one entry of a reorder request
type StepOrderItem struct {
	StepID uint `json:"stepId"`
}

// ReorderStepsRequest carries the new step sequence for a course
type ReorderStepsRequest struct {
	StepOrder []StepOrderItem `json:"stepOrder"`
}
