package handler

import (
	"time"

	"mdr/internal/domain/entity"
	"mdr/internal/usecase"

	"github.com/google/uuid"
)

// AccountView is the public representation of an account. Password hashes
// and pending tokens never leave the service.
type AccountView struct {
	ID          uuid.UUID    `json:"id"`
	Username    string       `json:"username"`
	Role        string       `json:"role"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	IsVerified  bool         `json:"is_verified"`
	PatientID   *uuid.UUID   `json:"patient_id,omitempty"`
	Patient     *PatientView `json:"patient,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PatientView is the patient profile as shown to its owner.
type PatientView struct {
	ID                  uuid.UUID `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	DateOfBirth         time.Time `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	MedicalRecordNumber string    `json:"medical_record_number"`
	Email               string    `json:"email"`
	PhoneNumber         string    `json:"phone_number"`
	Allergies           []string  `json:"allergies"`
	EmergencyContact    string    `json:"emergency_contact"`
}

// LoginView is returned by a successful login.
type LoginView struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	Account     *AccountView `json:"account"`
}

func newAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	view := &AccountView{
		ID:          account.ID,
		Username:    account.Username,
		Role:        account.Role.String(),
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		IsVerified:  account.IsVerified,
		PatientID:   account.PatientID,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
	if account.Patient != nil {
		view.Patient = newPatientView(account.Patient)
	}

	return view
}

func newAccountViews(accounts []*entity.Account) []*AccountView {
	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account))
	}

	return views
}

func newPatientView(patient *entity.Patient) *PatientView {
	return &PatientView{
		ID:                  patient.ID,
		FirstName:           patient.FirstName,
		LastName:            patient.LastName,
		DateOfBirth:         patient.DateOfBirth,
		Gender:              patient.Gender,
		MedicalRecordNumber: patient.MedicalRecordNumber,
		Email:               patient.Email,
		PhoneNumber:         patient.PhoneNumber,
		Allergies:           patient.Allergies,
		EmergencyContact:    patient.EmergencyContact,
	}
}

func newLoginView(output *usecase.LoginOutput) *LoginView {
	return &LoginView{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   output.ExpiresIn,
		Account:     newAccountView(output.Account),
	}
}
