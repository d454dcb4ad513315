package database

import (
	"fmt"
	"os"

	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type seedFile struct {
	Jobs []seedJob `yaml:"jobs"`
}

type seedJob struct {
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	Competencies []string       `yaml:"competencies"`
	Questions    []seedQuestion `yaml:"questions"`
}

type seedQuestion struct {
	Text       string  `yaml:"text"`
	Competency *string `yaml:"competency"`
	OrderIndex int     `yaml:"order_index"`
}

// SeedJobs loads jobs and their questions from a YAML file into an empty jobs
// table. A non-empty table or an unset path is a no-op.
func SeedJobs(db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count jobs before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sj := range seed.Jobs {
			job := model.Job{
				Title:        sj.Title,
				Description:  sj.Description,
				Competencies: sj.Competencies,
			}
			for _, sq := range sj.Questions {
				job.Questions = append(job.Questions, model.JobQuestion{
					Text:       sq.Text,
					Competency: sq.Competency,
					OrderIndex: sq.OrderIndex,
				})
			}
			if err := tx.Create(&job).Error; err != nil {
				return fmt.Errorf("failed to seed job %q: %w", sj.Title, err)
			}
			log.Info().Str("title", job.Title).Int("questions", len(job.Questions)).Msg("Seeded job")
		}
		return nil
	})
}
