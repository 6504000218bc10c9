package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rifaapp/rifa-api/internal/domain"
)

var ErrParticipantNotFound = domain.ErrParticipantNotFound

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

// ResolveOrCreate returns the participant owning email, creating one when none exists.
func (d *ParticipantDAO) ResolveOrCreate(ctx context.Context, name string, email *string, now time.Time) (Participant, error) {
	var participant Participant

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		participant, err = resolveParticipant(tx, name, email, now)
		return err
	})
	if err != nil {
		return Participant{}, classify(err)
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uuid.UUID) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// resolveParticipant deduplicates by email. A concurrent insert of the same
// email loses the ON CONFLICT race and reads the winner's row instead.
func resolveParticipant(tx *gorm.DB, name string, email *string, now time.Time) (Participant, error) {
	participant := Participant{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
	}

	if email == nil {
		if err := tx.Create(&participant).Error; err != nil {
			return Participant{}, err
		}

		return participant, nil
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	if result.RowsAffected == 1 {
		return participant, nil
	}

	var existing Participant
	if err := tx.First(&existing, "email = ?", *email).Error; err != nil {
		return Participant{}, err
	}

	return existing, nil
}
