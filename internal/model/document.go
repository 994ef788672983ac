package model

// Document carries one document through the analysis pipeline.
// Normalized is derived once and immutable afterwards.
type Document struct {
	Raw        string
	Normalized string
	Profile    Profile
}
