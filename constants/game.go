package constants

// Initial Layout
const (
	// StartRow and StartCol place the head of the initial snake
	StartRow = 4
	StartCol = 10

	// StartLength is the initial segment count, laid out to the left of the head
	StartLength = 3

	// FoodStartRow and FoodStartCol place the first food item
	FoodStartRow = 10
	FoodStartCol = 20
)

// Score List
const (
	// MaxScoreRecords caps the top score list
	MaxScoreRecords = 10

	// ScorePerFood is awarded each time the head lands on food
	ScorePerFood = 1
)
