package utils

import (
	"log"
	"time"

	courseModels "coursecraft/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[STEP-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReconcileScheduler runs the step-list reconciler on the given cron
// spec. Returns the started scheduler so callers can stop it on shutdown.
func StartReconcileScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := ReconcileStepLists(db); err != nil {
			logReconciler("Reconcile run failed: " + err.Error())
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logReconciler("Scheduler started with spec " + spec)
	return c, nil
}

// ReconcileStepLists repairs drift between each course's ordered step-id
// list and the steps actually stored with that course id. Dangling ids are
// dropped; steps missing from the list are appended in step-number order.
// Step create/delete already run transactionally, so this only catches
// writes that bypassed the services or partial manual edits.
func ReconcileStepLists(db *gorm.DB) error {
	var courses []courseModels.Course
	if err := db.Find(&courses).Error; err != nil {
		return err
	}

	for _, course := range courses {
		var steps []courseModels.Step
		if err := db.Where("course_id = ?", course.ID).
			Order("step_number ASC").
			Find(&steps).Error; err != nil {
			return err
		}

		stored := make(map[uint]bool, len(steps))
		for _, step := range steps {
			stored[step.ID] = true
		}

		changed := false

		// Drop ids that no longer resolve to a step of this course
		kept := make([]uint, 0, len(course.StepIDs))
		listed := make(map[uint]bool, len(course.StepIDs))
		for _, id := range course.StepIDs {
			if stored[id] {
				kept = append(kept, id)
				listed[id] = true
			} else {
				changed = true
			}
		}

		// Append steps the list never picked up
		for _, step := range steps {
			if !listed[step.ID] {
				kept = append(kept, step.ID)
				changed = true
			}
		}

		if changed {
			course.StepIDs = kept
			if err := db.Save(&course).Error; err != nil {
				return err
			}
			logReconciler("Repaired step list for course " + course.Name)
		}
	}

	return nil
}
