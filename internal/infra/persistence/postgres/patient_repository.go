package postgres

import (
	"context"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *patientRepository) findOne(ctx context.Context, query string, arg any) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).Where(query, arg).First(&patientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find patient")
	}

	return toPatientDomain(&patientM), nil
}

// Update overwrites the patient row.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	result := repo.db.WithContext(ctx).Omit(clause.Associations).Save(patientM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("patient email or record number in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}

	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:                  data.ID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		DateOfBirth:         data.DateOfBirth,
		Gender:              data.Gender,
		MedicalRecordNumber: data.MedicalRecordNumber,
		Email:               data.Email,
		PhoneNumber:         data.PhoneNumber,
		Allergies:           data.Allergies,
		EmergencyContact:    data.EmergencyContact,
		AppointmentHistory:  data.AppointmentHistory,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:                  data.ID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		DateOfBirth:         data.DateOfBirth,
		Gender:              data.Gender,
		MedicalRecordNumber: data.MedicalRecordNumber,
		Email:               data.Email,
		PhoneNumber:         data.PhoneNumber,
		Allergies:           data.Allergies,
		EmergencyContact:    data.EmergencyContact,
		AppointmentHistory:  data.AppointmentHistory,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
