package services

import (
	"errors"

	"github.com/notmarkmiranda/golf-dads-api-sub000/config"
	"github.com/notmarkmiranda/golf-dads-api-sub000/models"
	"github.com/notmarkmiranda/golf-dads-api-sub000/utils"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// RequestPasswordReset emails a one-time code. Unknown addresses return nil
// so the endpoint cannot be used to enumerate accounts.
func RequestPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateRandomToken(8)
	if err := config.DB.Model(&user).Update("reset_code", code).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

func ResetPassword(email, code, newPassword string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return errors.New("invalid reset code")
	}
	if user.ResetCode == "" || user.ResetCode != code {
		return errors.New("invalid reset code")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&user).Updates(map[string]any{
		"password":   hashed,
		"reset_code": "",
	}).Error
}
