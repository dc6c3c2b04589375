package dto

// PasswordChangeRequest re-verifies the current password before setting a
// new one.
type PasswordChangeRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// PhoneNumberChangeRequest follows the same re-verification pattern.
type PhoneNumberChangeRequest struct {
	Password       string `json:"password"`
	NewPhoneNumber string `json:"new_phone_number"`
}
