package mcp

// SearchCourseInput defines the input schema for the search_course tool.
type SearchCourseInput struct {
	Query string `json:"query" jsonschema:"free-text query over course content"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results, default 10"`
}

// SearchCourseOutput defines the output schema for the search_course tool.
type SearchCourseOutput struct {
	Results []CourseResult `json:"results"`
}

// CourseResult is one ranked jump target.
type CourseResult struct {
	Kind         string `json:"kind"`
	ContentType  string `json:"content_type"`
	ContentID    string `json:"content_id"`
	Title        string `json:"title"`
	SectionID    string `json:"section_id,omitempty"`
	SectionTitle string `json:"section_title,omitempty"`
	Preview      string `json:"preview"`
	Route        string `json:"route"`
	Score        int    `json:"score"`
}

// CourseStatusInput defines the input schema for the course_status tool
// (no parameters).
type CourseStatusInput struct{}

// CourseStatusOutput defines the output schema for the course_status tool.
type CourseStatusOutput struct {
	Lectures     int `json:"lectures"`
	Sections     int `json:"sections"`
	Assignments  int `json:"assignments"`
	TotalIndexed int `json:"total_indexed"`
}
