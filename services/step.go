package services

import (
	"errors"
	"strings"

	"coursecraft/dto"
	courseModels "coursecraft/models/course"

	"gorm.io/gorm"
)

const defaultSnippetLanguage = "javascript"

// StepService implements step CRUD and ordering within a course. Operations
// that touch both a step and its parent course's step-id list run inside one
// transaction so the two sides cannot drift on a partial failure.
type StepService struct {
	db *gorm.DB
}

func NewStepService(db *gorm.DB) *StepService {
	return &StepService{db: db}
}

// GetStepsByCourse lists a course's steps by step number ascending
func (s *StepService) GetStepsByCourse(courseID uint) ([]courseModels.Step, error) {
	var steps []courseModels.Step
	err := s.db.Where("course_id = ?", courseID).Order("step_number ASC").Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// GetStepByID returns a single step
func (s *StepService) GetStepByID(stepID uint) (*courseModels.Step, error) {
	var step courseModels.Step
	if err := s.db.First(&step, stepID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Step not found")
		}
		return nil, err
	}
	return &step, nil
}

// CreateStep persists a step under an existing course and appends its id to
// the course's step-id list.
func (s *StepService) CreateStep(courseID uint, req *dto.CreateStepRequest) (*courseModels.Step, error) {
	step := courseModels.Step{
		CourseID:     courseID,
		StepNumber:   req.StepNumber,
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		Images:       req.Images,
		CodeSnippets: defaultSnippetLanguages(req.CodeSnippets),
		Activities:   req.Activities,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var course courseModels.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Course not found")
			}
			return err
		}

		if err := tx.Create(&step).Error; err != nil {
			return err
		}

		course.StepIDs = append(course.StepIDs, step.ID)
		return tx.Save(&course).Error
	})
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// UpdateStep applies a partial patch to step fields. The parent course's
// step-id list is not touched here.
func (s *StepService) UpdateStep(stepID uint, req *dto.UpdateStepRequest) (*courseModels.Step, error) {
	step, err := s.GetStepByID(stepID)
	if err != nil {
		return nil, err
	}

	if req.StepNumber != nil {
		step.StepNumber = *req.StepNumber
	}
	if req.Title != nil {
		step.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		step.Content = *req.Content
	}
	if req.Images != nil {
		step.Images = *req.Images
	}
	if req.CodeSnippets != nil {
		step.CodeSnippets = defaultSnippetLanguages(*req.CodeSnippets)
	}
	if req.Activities != nil {
		step.Activities = *req.Activities
	}

	if err := s.db.Save(step).Error; err != nil {
		return nil, err
	}
	return step, nil
}

// DeleteStep pulls the step's id out of the parent course's list and deletes
// the step, both in one transaction. A missing parent course is tolerated so
// orphaned steps stay deletable.
func (s *StepService) DeleteStep(stepID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var step courseModels.Step
		if err := tx.First(&step, stepID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Step not found")
			}
			return err
		}

		var course courseModels.Course
		err := tx.First(&course, step.CourseID).Error
		switch {
		case err == nil:
			kept := course.StepIDs[:0]
			for _, id := range course.StepIDs {
				if id != step.ID {
					kept = append(kept, id)
				}
			}
			course.StepIDs = kept
			if err := tx.Save(&course).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Delete(&step).Error
	})
}

// ReorderSteps sets each listed step's number to its position in the
// submitted sequence, starting at 1, as one batched transaction. Ids are
// applied exactly as given: membership in the course, completeness and
// uniqueness are intentionally not checked.
func (s *StepService) ReorderSteps(courseID uint, req *dto.ReorderStepsRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range req.StepOrder {
			err := tx.Model(&courseModels.Step{}).
				Where("id = ?", item.StepID).
				Update("step_number", i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// defaultSnippetLanguages fills in the language tag where a snippet omits it
func defaultSnippetLanguages(snippets []courseModels.CodeSnippet) []courseModels.CodeSnippet {
	for i := range snippets {
		if snippets[i].Language == "" {
			snippets[i].Language = defaultSnippetLanguage
		}
	}
	return snippets
}
