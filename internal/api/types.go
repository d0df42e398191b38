package api

// --- Wordnik Wire Types ---

type wordnikDefinition struct {
	Word             string `json:"word"`
	Text             string `json:"text"`
	PartOfSpeech     string `json:"partOfSpeech"`
	AttributionText  string `json:"attributionText"`
	SourceDictionary string `json:"sourceDictionary"`
}

// --- Definitions ---

// Sense is one definition of a word.
type Sense struct {
	PartOfSpeech string
	Text         string
}

// Definition is the result of a lookup. Found is false when the provider
// has no definition for the word.
type Definition struct {
	Word        string
	Found       bool
	Senses      []Sense
	Attribution string
}
