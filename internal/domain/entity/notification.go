package entity

// LinkMessage is a templated mail carrying a single action link.
type LinkMessage struct {
	Purpose   LinkPurpose `json:"purpose"`
	To        string      `json:"to"`
	Username  string      `json:"username,omitempty"`
	Link      string      `json:"link"`
	RequestID string      `json:"requestId,omitempty"`
}

// LinkPurpose selects the mail template for a link message.
type LinkPurpose string

const (
	// LinkPurposeAccountSetup invites a provisioned user to set their password.
	LinkPurposeAccountSetup LinkPurpose = "account_setup"
	// LinkPurposeConfirmEmail asks the owner to confirm their email address.
	LinkPurposeConfirmEmail LinkPurpose = "confirm_email"
	// LinkPurposePasswordReset carries a password reset link.
	LinkPurposePasswordReset LinkPurpose = "password_reset"
	// LinkPurposeConfirmDeletion asks the owner to confirm account deletion.
	LinkPurposeConfirmDeletion LinkPurpose = "confirm_deletion"
)

// String returns the string representation of the purpose.
func (p LinkPurpose) String() string {
	return string(p)
}

// IsValid checks if the purpose is a known value.
func (p LinkPurpose) IsValid() bool {
	switch p {
	case LinkPurposeAccountSetup, LinkPurposeConfirmEmail, LinkPurposePasswordReset, LinkPurposeConfirmDeletion:
		return true
	default:
		return false
	}
}
