package services

import (
	"errors"
	"fmt"

	"github.com/notmarkmiranda/golf-dads-api-sub000/config"
	"github.com/notmarkmiranda/golf-dads-api-sub000/models"
	"github.com/notmarkmiranda/golf-dads-api-sub000/utils"
)

type ProfileInput struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Handicap       *float64 `json:"handicap"`
	HomeCourse     string   `json:"home_course"`
	ProfilePicture string   `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"name":        user.DisplayName(),
		"handicap":    user.Handicap,
		"home_course": user.HomeCourse,
		"avatar_url":  user.AvatarURL,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Handicap != nil {
		user.Handicap = *input.Handicap
	}
	if input.HomeCourse != "" {
		user.HomeCourse = input.HomeCourse
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(input.ProfilePicture, fmt.Sprintf("avatars/%d", user.ID))
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
