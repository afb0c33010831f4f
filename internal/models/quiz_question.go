package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// QuizQuestionCollection is the store collection holding quiz question documents
const QuizQuestionCollection = "quizquestion"

// DefaultDifficulty is assigned when a quiz question is created without one
const DefaultDifficulty = "OSN-N"

// QuizQuestion is a multiple choice question tied to a chapter by slug.
// The chapter reference is used only for filtering; it is not enforced.
type QuizQuestion struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ChapterSlug  string             `bson:"chapter_slug" json:"chapter_slug"`
	Question     string             `bson:"question" json:"question"`
	Options      []string           `bson:"options" json:"options"`
	CorrectIndex int                `bson:"correct_index" json:"correct_index"`
	Explanation  string             `bson:"explanation" json:"explanation"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
}

// QuizQuestionView is the response shape for a quiz question
type QuizQuestionView struct {
	ID           string   `json:"id"`
	ChapterSlug  string   `json:"chapter_slug"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
}

// View serializes a stored quiz question
func (q QuizQuestion) View() QuizQuestionView {
	v := QuizQuestionView{
		ID:           q.ID.Hex(),
		ChapterSlug:  q.ChapterSlug,
		Question:     q.Question,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		Difficulty:   q.Difficulty,
	}
	if v.Options == nil {
		v.Options = []string{}
	}
	if v.Difficulty == "" {
		v.Difficulty = DefaultDifficulty
	}
	return v
}

// CreateQuizQuestionRequest represents a request to create a quiz question
type CreateQuizQuestionRequest struct {
	ChapterSlug  string   `json:"chapter_slug"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
}
