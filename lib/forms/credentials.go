package forms

// CredentialsParams is an email/password pair as submitted by the sign-in
// form.
type CredentialsParams struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// Validate checks the credentials shape: a syntactically valid email address
// and a password of at least 6 characters. A malformed pair is rejected here,
// before any user lookup happens.
func (p CredentialsParams) Validate() error {
	return validate.Struct(&p)
}
