package services_test

import (
	"testing"

	"coursecraft/dto"
	courseModels "coursecraft/models/course"
	"coursecraft/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStepUnderMissingCourse(t *testing.T) {
	_, steps, db := newCourseServices(t)

	_, err := steps.CreateStep(999, createStepReq(1, "Hello world"))
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	// Nothing persisted
	var count int64
	require.NoError(t, db.Model(&courseModels.Step{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateStepAppendsToCourseList(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	step, err := steps.CreateStep(course.ID, createStepReq(1, "Hello world"))
	require.NoError(t, err)
	assert.Equal(t, course.ID, step.CourseID)

	listed, err := steps.GetStepsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, step.ID, listed[0].ID)

	detail, err := courses.GetCourseByID(course.ID)
	require.NoError(t, err)

	occurrences := 0
	for _, id := range detail.StepIDs {
		if id == step.ID {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "step id should appear in the course list exactly once")
}

func TestGetStepsByCourseSortedByNumber(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	_, err = steps.CreateStep(course.ID, createStepReq(3, "Third"))
	require.NoError(t, err)
	_, err = steps.CreateStep(course.ID, createStepReq(1, "First"))
	require.NoError(t, err)
	_, err = steps.CreateStep(course.ID, createStepReq(2, "Second"))
	require.NoError(t, err)

	listed, err := steps.GetStepsByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{listed[0].Title, listed[1].Title, listed[2].Title})
}

func TestCreateStepDefaultsSnippetLanguage(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	req := createStepReq(1, "Hello world")
	req.CodeSnippets = []courseModels.CodeSnippet{
		{Code: "console.log('hi')"},
		{Code: "fmt.Println(\"hi\")", Language: "go"},
	}

	step, err := steps.CreateStep(course.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "javascript", step.CodeSnippets[0].Language)
	assert.Equal(t, "go", step.CodeSnippets[1].Language)
}

func TestUpdateStepRoundTrip(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	req := createStepReq(1, "Hello world")
	req.Activities = []courseModels.Activity{
		{Type: "multiple-choice", Question: "What prints?", Options: []string{"hi", "ho"}, CorrectAnswer: "hi"},
	}
	step, err := steps.CreateStep(course.ID, req)
	require.NoError(t, err)

	newTitle := "Hello, world!"
	updated, err := steps.UpdateStep(step.ID, &dto.UpdateStepRequest{Title: &newTitle})
	require.NoError(t, err)

	fetched, err := steps.GetStepByID(step.ID)
	require.NoError(t, err)

	// Patched field changed, everything else kept
	assert.Equal(t, "Hello, world!", fetched.Title)
	assert.Equal(t, updated.Content, fetched.Content)
	assert.Equal(t, step.Content, fetched.Content)
	assert.Equal(t, step.StepNumber, fetched.StepNumber)
	require.Len(t, fetched.Activities, 1)
	assert.Equal(t, "hi", fetched.Activities[0].CorrectAnswer)

	_, err = steps.UpdateStep(999, &dto.UpdateStepRequest{Title: &newTitle})
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestDeleteStepPullsIdFromCourseList(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	kept, err := steps.CreateStep(course.ID, createStepReq(1, "Kept step"))
	require.NoError(t, err)
	doomed, err := steps.CreateStep(course.ID, createStepReq(2, "Doomed step"))
	require.NoError(t, err)

	require.NoError(t, steps.DeleteStep(doomed.ID))

	_, err = steps.GetStepByID(doomed.ID)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	detail, err := courses.GetCourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{kept.ID}, []uint(detail.StepIDs))

	err = steps.DeleteStep(doomed.ID)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestDeleteStepToleratesMissingCourse(t *testing.T) {
	courses, steps, db := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)
	step, err := steps.CreateStep(course.ID, createStepReq(1, "Orphaned step"))
	require.NoError(t, err)

	// Remove the parent out from under the step
	require.NoError(t, db.Unscoped().Delete(&courseModels.Course{}, course.ID).Error)

	require.NoError(t, steps.DeleteStep(step.ID))
	_, err = steps.GetStepByID(step.ID)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestReorderStepsAppliesPositionalNumbers(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)

	stepA, err := steps.CreateStep(course.ID, createStepReq(1, "Step A"))
	require.NoError(t, err)
	stepB, err := steps.CreateStep(course.ID, createStepReq(2, "Step B"))
	require.NoError(t, err)

	err = steps.ReorderSteps(course.ID, &dto.ReorderStepsRequest{
		StepOrder: []dto.StepOrderItem{{StepID: stepB.ID}, {StepID: stepA.ID}},
	})
	require.NoError(t, err)

	reorderedB, err := steps.GetStepByID(stepB.ID)
	require.NoError(t, err)
	reorderedA, err := steps.GetStepByID(stepA.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reorderedB.StepNumber)
	assert.Equal(t, 2, reorderedA.StepNumber)
}

// Membership is intentionally unchecked: ids from another course submitted to
// a reorder are renumbered all the same.
func TestReorderStepsIgnoresCourseMembership(t *testing.T) {
	courses, steps, _ := newCourseServices(t)

	course, err := courses.CreateCourse(createCourseReq("Intro to Go"))
	require.NoError(t, err)
	other, err := courses.CreateCourse(createCourseReq("Another course"))
	require.NoError(t, err)

	foreign, err := steps.CreateStep(other.ID, createStepReq(5, "Foreign step"))
	require.NoError(t, err)

	err = steps.ReorderSteps(course.ID, &dto.ReorderStepsRequest{
		StepOrder: []dto.StepOrderItem{{StepID: foreign.ID}},
	})
	require.NoError(t, err)

	renumbered, err := steps.GetStepByID(foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, renumbered.StepNumber)
	assert.Equal(t, other.ID, renumbered.CourseID)
}
