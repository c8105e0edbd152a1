// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	subjectModel "bokjisa_backend/internals/features/academics/subjects/model"
)

// RunPresetSeeds fills the preset catalogs on first boot. Each table is
// guarded by a count, so restarts never duplicate rows; edits made through
// the admin endpoints are left alone.
func RunPresetSeeds(db *gorm.DB) error {
	var subjectCount int64
	if err := db.Model(&subjectModel.SubjectPresetModel{}).Count(&subjectCount).Error; err != nil {
		return err
	}
	if subjectCount == 0 {
		presets := subjectPresets()
		if err := db.Create(&presets).Error; err != nil {
			return err
		}
		log.Printf("🌱 seeded %d subject presets", len(presets))
	}

	var selfStudyCount int64
	if err := db.Model(&subjectModel.SelfStudyPresetModel{}).Count(&selfStudyCount).Error; err != nil {
		return err
	}
	if selfStudyCount == 0 {
		presets := selfStudyPresets()
		if err := db.Create(&presets).Error; err != nil {
			return err
		}
		log.Printf("🌱 seeded %d self-study presets", len(presets))
	}

	return nil
}
