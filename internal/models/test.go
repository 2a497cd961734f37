package models

type Test struct {
	TestID    string     `bson:"_id" json:"testId"`
	Title     string     `bson:"title" json:"title"`
	Duration  float64    `bson:"duration" json:"duration"`
	Questions []Question `bson:"questions" json:"questions"`
}
