package subjects

import (
	"context"
	_ "embed"
	"log"

	"github.com/bytedance/sonic"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/subjects/model"
)

//go:embed data_subjects.json
var catalog []byte

type subjectSeed struct {
	Name string `json:"name"`
}

// SeedSubjects inserts catalog entries that have no live row yet. Soft-deleted subjects stay deleted.
func SeedSubjects(ctx context.Context, db *gorm.DB) (int, error) {
	var seeds []subjectSeed
	if err := sonic.Unmarshal(catalog, &seeds); err != nil {
		return 0, pkgerrors.Wrap(err, "decode subject catalog")
	}

	var existing []constants.SubjectName
	if err := db.WithContext(ctx).Unscoped().
		Model(&model.SubjectModel{}).
		Pluck("name", &existing).Error; err != nil {
		return 0, pkgerrors.Wrap(err, "load existing subjects")
	}
	seen := make(map[constants.SubjectName]bool, len(existing))
	for _, n := range existing {
		seen[n] = true
	}

	var rows []model.SubjectModel
	for _, s := range seeds {
		name := constants.NormalizeSubjectName(s.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		rows = append(rows, model.SubjectModel{Name: name})
	}
	if len(rows) == 0 {
		log.Println("[INFO] subject catalog already seeded")
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, pkgerrors.Wrap(err, "insert subjects")
	}
	log.Printf("[INFO] seeded %d subjects", len(rows))
	return len(rows), nil
}
