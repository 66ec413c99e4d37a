package utils_test

import (
	"fmt"
	"testing"

	"coursecraft/database"
	courseModels "coursecraft/models/course"
	"coursecraft/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestReconcileStepListsRepairsDrift(t *testing.T) {
	db := openTestDB(t)

	course := courseModels.Course{
		Name:        "Intro to Go",
		Description: "Learn things one step at a time",
		Language:    "go",
	}
	require.NoError(t, db.Create(&course).Error)

	first := courseModels.Step{CourseID: course.ID, StepNumber: 1, Title: "First", Content: "Content long enough"}
	second := courseModels.Step{CourseID: course.ID, StepNumber: 2, Title: "Second", Content: "Content long enough"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	// Simulate drift: a dangling id in the list, the real steps missing
	course.StepIDs = []uint{9999, second.ID}
	require.NoError(t, db.Save(&course).Error)

	require.NoError(t, utils.ReconcileStepLists(db))

	var repaired courseModels.Course
	require.NoError(t, db.First(&repaired, course.ID).Error)

	// Dangling id dropped, listed step kept, unlisted step appended
	assert.Equal(t, []uint{second.ID, first.ID}, []uint(repaired.StepIDs))
}

func TestReconcileStepListsLeavesConsistentCoursesAlone(t *testing.T) {
	db := openTestDB(t)

	course := courseModels.Course{
		Name:        "Intro to Go",
		Description: "Learn things one step at a time",
		Language:    "go",
	}
	require.NoError(t, db.Create(&course).Error)

	step := courseModels.Step{CourseID: course.ID, StepNumber: 1, Title: "Only", Content: "Content long enough"}
	require.NoError(t, db.Create(&step).Error)

	course.StepIDs = []uint{step.ID}
	require.NoError(t, db.Save(&course).Error)
	before := course.UpdatedAt

	require.NoError(t, utils.ReconcileStepLists(db))

	var after courseModels.Course
	require.NoError(t, db.First(&after, course.ID).Error)
	assert.Equal(t, []uint{step.ID}, []uint(after.StepIDs))
	assert.Equal(t, before.Unix(), after.UpdatedAt.Unix())
}
