package dto

// CreateCourseRequest is the payload for course creation
type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	IconURL     string `json:"iconUrl"`
}

// UpdateCourseRequest is a partial course patch; nil fields stay untouched
type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	IconURL     *string `json:"iconUrl"`
}

// CourseFilter narrows the course listing
type CourseFilter struct {
	Language string `query:"language"`
	Period   string `query:"period"` // today, week or month
}
