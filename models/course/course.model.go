package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents an authored unit of ordered lesson steps
type Course struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
	Language    string `json:"language" gorm:"index"`
	IconURL     string `json:"iconUrl"`

	// Ordered step ids. Steps carry a courseId back-reference; both sides
	// are updated together inside one transaction on create/delete.
	StepIDs datatypes.JSONSlice[uint] `json:"-"`

	// Resolved steps, populated on detail reads only. A pointer so summary
	// views omit the key while a detail read always carries an array, even
	// an empty one.
	Steps *[]Step `json:"steps,omitempty" gorm:"-"`
}
