package handlers

import (
	"strings"
)

var allowedGenders = map[string]struct{}{
	"Male":   {},
	"Female": {},
	"Other":  {},
}

var allowedActivityLevels = map[string]struct{}{
	"Sedentary":         {},
	"Lightly Active":    {},
	"Moderately Active": {},
	"Very Active":       {},
	"Super Active":      {},
}

var allowedGoals = map[string]struct{}{
	"Muscle Gain": {},
	"Fat Loss":    {},
	"Stay Active": {},
}

func validateGeneralRequest(req generalRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.Age < 1 || req.Age > 120 {
		return "age must be between 1 and 120"
	}
	if req.Weight <= 0 || req.Weight > 500 {
		return "weight must be between 0 and 500"
	}
	if req.Height <= 0 || req.Height > 300 {
		return "height must be between 0 and 300"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if err := validateActivityLevel(req.ActivityLevel); err != "" {
		return err
	}
	return ""
}

func validateGoalsRequest(req goalsRequest) string {
	if len(req.Goals) == 0 {
		return "select at least one goal"
	}
	for _, goal := range req.Goals {
		if _, ok := allowedGoals[goal]; !ok {
			return "goals must be one of: Muscle Gain, Fat Loss, Stay Active"
		}
	}
	return ""
}

func validateNutritionRequest(req nutritionRequest) string {
	if req.Calories <= 0 {
		return "calories must be greater than 0"
	}
	if req.Protein <= 0 {
		return "protein must be greater than 0"
	}
	if req.Carbs <= 0 {
		return "carbs must be greater than 0"
	}
	if req.Fats <= 0 {
		return "fats must be greater than 0"
	}
	return ""
}

func validateGender(gender string) string {
	if _, ok := allowedGenders[strings.TrimSpace(gender)]; !ok {
		return "gender must be one of: Male, Female, Other"
	}
	return ""
}

func validateActivityLevel(level string) string {
	if _, ok := allowedActivityLevels[strings.TrimSpace(level)]; !ok {
		return "activity_level must be one of: Sedentary, Lightly Active, Moderately Active, Very Active, Super Active"
	}
	return ""
}
