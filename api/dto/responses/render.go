// ABOUTME: Response DTOs for the document rendering endpoint
// ABOUTME: Returns the enriched markup with per pass counters

package responses

// RenderResponse is the body returned by POST /render
type RenderResponse struct {
	HTML      string `json:"html" doc:"Enriched markup"`
	Elements  int    `json:"elements" doc:"Tagged elements processed"`
	Abandoned int    `json:"abandoned" doc:"Elements with no valid reference"`
	Fetched   int    `json:"fetched" doc:"Reference and translation pairs rendered"`
	Skipped   int    `json:"skipped" doc:"Pairs that could not be fetched"`
}
