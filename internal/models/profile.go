package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type General struct {
	Name          string  `bson:"name" json:"name"`
	Age           int     `bson:"age" json:"age"`
	Weight        float64 `bson:"weight" json:"weight"`
	Height        float64 `bson:"height" json:"height"`
	Gender        string  `bson:"gender" json:"gender"`
	ActivityLevel string  `bson:"activity_level" json:"activity_level"`
}

type Nutrition struct {
	Calories int `bson:"calories" json:"calories"`
	Protein  int `bson:"protein" json:"protein"`
	Carbs    int `bson:"carbs" json:"carbs"`
	Fats     int `bson:"fats" json:"fats"`
}

// Profile is one user's document in the personal_data collection. ID is the
// user-facing lookup key; StorageID is assigned by the store at insertion and
// targets updates and deletes.
type Profile struct {
	StorageID primitive.ObjectID `bson:"_id,omitempty" json:"storage_id,omitempty"`
	ID        int64              `bson:"id" json:"id"`
	General   General            `bson:"general" json:"general"`
	Goals     []string           `bson:"goals" json:"goals"`
	Nutrition Nutrition          `bson:"nutrition" json:"nutrition"`
}

// DefaultProfile returns the document inserted on first access. Every
// section is populated so no profile is ever partially absent.
func DefaultProfile(id int64) *Profile {
	return &Profile{
		ID: id,
		General: General{
			Name:          "",
			Age:           30,
			Weight:        70.0,
			Height:        175.5,
			Gender:        "Male",
			ActivityLevel: "Moderately Active",
		},
		Goals: []string{"Muscle Gain"},
		Nutrition: Nutrition{
			Calories: 2500,
			Protein:  150,
			Carbs:    300,
			Fats:     70,
		},
	}
}
