package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acmehq/invoicehub/db/models"
	"github.com/acmehq/invoicehub/lib/forms"
	"github.com/acmehq/invoicehub/lib/security"
	"github.com/acmehq/invoicehub/lib/tokens"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// ErrInvalidCredentials marks an authentication rejection. Callers classify
// it with errors.Is, anything else coming out of the sign-in flow is an
// unexpected fault and must be propagated, not swallowed.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (svc *InvoicehubService) CreateUser(ctx context.Context, email string, password string, name string) (user *models.User, err error) {

	user = &models.User{
		Email: email,
		Name:  name,
	}

	// generate a password if none was provided
	if password == "" {
		randPasswordBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		password = string(randPasswordBytes)
	} else if svc.Config.MinPasswordEntropy > 0 {
		entropy := passwordvalidator.GetEntropy(password)
		if entropy < float64(svc.Config.MinPasswordEntropy) {
			return nil, fmt.Errorf("password entropy is too low (%f), required is %d", entropy, svc.Config.MinPasswordEntropy)
		}
	}

	// we only store the hashed password but return the initial plain text password in the HTTP response
	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword

	if _, err := svc.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}
	user.Password = password
	return user, nil
}

func (svc *InvoicehubService) FindUser(ctx context.Context, userId int64) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (svc *InvoicehubService) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthorizeCredentials decides whether an email/password pair identifies a
// user. Malformed input, an unknown email and a wrong password all collapse
// to the same (nil, nil) result so the caller cannot tell which part was
// wrong. A failing user fetch is returned as an error: unexpected database
// faults must surface, not hide behind a login rejection.
func (svc *InvoicehubService) AuthorizeCredentials(ctx context.Context, email string, password string) (*models.User, error) {
	credentials := forms.CredentialsParams{Email: email, Password: password}
	if err := credentials.Validate(); err != nil {
		return nil, nil
	}

	user, err := svc.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if !security.VerifyPassword(user.Password, password) {
		return nil, nil
	}
	return user, nil
}

// GenerateToken is the sign-in orchestrator: credentials or a refresh token
// in, an access/refresh token pair out. Rejections are ErrInvalidCredentials.
func (svc *InvoicehubService) GenerateToken(ctx context.Context, email string, password string, inRefreshToken string) (accessToken string, refreshToken string, err error) {
	var user *models.User

	switch {
	case email != "" || password != "":
		user, err = svc.AuthorizeCredentials(ctx, email, password)
		if err != nil {
			return "", "", err
		}
		if user == nil {
			return "", "", ErrInvalidCredentials
		}
	case inRefreshToken != "":
		userId, err := tokens.ParseToken(svc.Config.JWTSecret, inRefreshToken, true)
		if err != nil {
			return "", "", ErrInvalidCredentials
		}
		user, err = svc.FindUser(ctx, userId)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", "", ErrInvalidCredentials
			}
			return "", "", err
		}
	default:
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, user)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
