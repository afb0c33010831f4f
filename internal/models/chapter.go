package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ChapterCollection is the store collection holding chapter documents
const ChapterCollection = "chapter"

// Section is one block of chapter content, by convention a "heading" and a "body"
type Section map[string]string

// Chapter is a biology chapter with structured learning content
type Chapter struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Slug       string             `bson:"slug" json:"slug"`
	Title      string             `bson:"title" json:"title"`
	Summary    string             `bson:"summary" json:"summary"`
	Objectives []string           `bson:"objectives" json:"objectives"`
	Sections   []Section          `bson:"sections" json:"sections"`
}

// ChapterView is the response shape for a chapter.
// The store's internal id is rendered as a hex string under "id".
type ChapterView struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Objectives []string  `json:"objectives"`
	Sections   []Section `json:"sections"`
}

// View serializes a stored chapter, rendering absent optional fields
// as empty sequences
func (c Chapter) View() ChapterView {
	v := ChapterView{
		ID:         c.ID.Hex(),
		Slug:       c.Slug,
		Title:      c.Title,
		Summary:    c.Summary,
		Objectives: c.Objectives,
		Sections:   c.Sections,
	}
	if v.Objectives == nil {
		v.Objectives = []string{}
	}
	if v.Sections == nil {
		v.Sections = []Section{}
	}
	return v
}

// CreateChapterRequest represents a request to create a chapter
type CreateChapterRequest struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Objectives []string  `json:"objectives"`
	Sections   []Section `json:"sections"`
}
