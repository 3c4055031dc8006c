// ABOUTME: Response DTOs for scripture lookups
// ABOUTME: Exposes verse groups in a stable JSON shape independent of the upstream API

package responses

// VerseResponse is a single verse
type VerseResponse struct {
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

// ReferenceResponse is one verse group
type ReferenceResponse struct {
	Translation    string          `json:"translation"`
	Abbreviation   string          `json:"abbreviation"`
	Language       string          `json:"language"`
	LanguageCode   string          `json:"language_code"`
	Direction      string          `json:"direction"`
	BookNumber     int             `json:"book_number"`
	BookName       string          `json:"book_name"`
	Chapter        int             `json:"chapter"`
	Reference      string          `json:"reference" doc:"Chapter name with the compressed verse range"`
	LocalReference string          `json:"local_reference,omitempty" doc:"Labels in the translation's own language"`
	VerseRange     string          `json:"verse_range" doc:"Compressed verse numbers, e.g. 1-3,5"`
	Link           string          `json:"link"`
	Verses         []VerseResponse `json:"verses"`
}

// ScriptureResponse is the body returned by GET /scripture/{translation}/{reference}
type ScriptureResponse struct {
	Translation string              `json:"translation"`
	Query       string              `json:"query" doc:"Reference as requested"`
	Format      string              `json:"format" doc:"Formatter used for rendered"`
	References  []ReferenceResponse `json:"references"`
	Rendered    string              `json:"rendered" doc:"Verse groups rendered with the selected formatter"`
}
