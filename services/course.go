package services

import (
	"errors"
	"strings"

	"coursecraft/dto"
	courseModels "coursecraft/models/course"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// CourseService implements course CRUD and owns the course side of the
// course/step relationship.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// GetAllCourses lists courses newest-first as summaries (steps not resolved).
// The filter can narrow by language and by creation period.
func (s *CourseService) GetAllCourses(filter *dto.CourseFilter) ([]courseModels.Course, error) {
	query := s.db.Order("created_at DESC")

	if filter != nil {
		if filter.Language != "" {
			query = query.Where("language = ?", filter.Language)
		}
		switch filter.Period {
		case "today":
			query = query.Where("created_at >= ?", now.BeginningOfDay())
		case "week":
			query = query.Where("created_at >= ?", now.BeginningOfWeek())
		case "month":
			query = query.Where("created_at >= ?", now.BeginningOfMonth())
		}
	}

	var courses []courseModels.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourseByID returns a course with its steps resolved in the order of the
// course's step-id list.
func (s *CourseService) GetCourseByID(courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Course not found")
		}
		return nil, err
	}

	resolved := make([]courseModels.Step, 0, len(course.StepIDs))
	if len(course.StepIDs) > 0 {
		var steps []courseModels.Step
		if err := s.db.Where("id IN ?", []uint(course.StepIDs)).Find(&steps).Error; err != nil {
			return nil, err
		}

		// Preserve the ordering of the step-id list
		byID := make(map[uint]courseModels.Step, len(steps))
		for _, step := range steps {
			byID[step.ID] = step
		}
		for _, id := range course.StepIDs {
			if step, ok := byID[id]; ok {
				resolved = append(resolved, step)
			}
		}
	}
	course.Steps = &resolved

	return &course, nil
}

// CreateCourse persists a new course with an empty step list
func (s *CourseService) CreateCourse(req *dto.CreateCourseRequest) (*courseModels.Course, error) {
	course := courseModels.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Language:    req.Language,
		IconURL:     req.IconURL,
		StepIDs:     []uint{},
	}

	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a partial patch and touches the update timestamp
func (s *CourseService) UpdateCourse(courseID uint, req *dto.UpdateCourseRequest) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Course not found")
		}
		return nil, err
	}

	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		course.Description = strings.TrimSpace(*req.Description)
	}
	if req.Language != nil {
		course.Language = *req.Language
	}
	if req.IconURL != nil {
		course.IconURL = *req.IconURL
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course and every step referencing it. Steps go
// first so no step is left pointing at a vanished course; both deletes run
// in one transaction.
func (s *CourseService) DeleteCourse(courseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course courseModels.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Course not found")
			}
			return err
		}

		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.Step{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
}

// SearchCourses matches a term case-insensitively against name, description
// and language. Summary view, no pagination.
func (s *CourseService) SearchCourses(term string) ([]courseModels.Course, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var courses []courseModels.Course
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(language) LIKE ?",
			pattern, pattern, pattern).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
