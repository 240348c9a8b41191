package search

import "github.com/lharari/jobboard/internal/dtos"

const defaultSize = 20

// BuildJobQuery translates search filters into an Elasticsearch request
// body. Straight filter-to-query translation: free text becomes a
// multi_match, exact facets become term filters, minSalary a range.
func BuildJobQuery(req dtos.JobSearchRequest) map[string]any {
	must := []map[string]any{}
	filter := []map[string]any{}

	if req.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  req.Query,
				"fields": []string{"title^2", "description", "company"},
			},
		})
	}
	if req.Location != "" {
		filter = append(filter, map[string]any{
			"term": map[string]any{"location.keyword": req.Location},
		})
	}
	if req.Level != "" {
		filter = append(filter, map[string]any{
			"term": map[string]any{"level.keyword": req.Level},
		})
	}
	if req.Type != "" {
		filter = append(filter, map[string]any{
			"term": map[string]any{"type.keyword": req.Type},
		})
	}
	if req.MinSalary > 0 {
		filter = append(filter, map[string]any{
			"range": map[string]any{"salary": map[string]any{"gte": req.MinSalary}},
		})
	}

	size := req.Size
	if size <= 0 || size > 100 {
		size = defaultSize
	}

	body := map[string]any{
		"size": size,
		"query": map[string]any{
			"bool": map[string]any{
				"must":   must,
				"filter": filter,
			},
		},
	}
	// Without free text there is no relevance score; newest first instead.
	if req.Query == "" {
		body["sort"] = []map[string]any{
			{"createdAt": map[string]any{"order": "desc"}},
		}
	}
	return body
}
