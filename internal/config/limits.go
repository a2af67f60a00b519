package config

const (
	// Complaint fields
	TitleMaxLen       = 100
	DescriptionMaxLen = 1000

	// Thread messages
	MessageMaxLen = 500

	// Survey
	RatingMin      = 1
	RatingMax      = 5
	SurveyTokenLen = 32 // random bytes before hex encoding
)
