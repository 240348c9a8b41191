package search

import (
	"testing"

	"github.com/lharari/jobboard/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJobQueryFreeText(t *testing.T) {
	body := BuildJobQuery(dtos.JobSearchRequest{Query: "golang backend"})

	boolQ := body["query"].(map[string]any)["bool"].(map[string]any)
	must := boolQ["must"].([]map[string]any)
	require.Len(t, must, 1)

	mm := must[0]["multi_match"].(map[string]any)
	assert.Equal(t, "golang backend", mm["query"])
	assert.Contains(t, mm["fields"], "title^2")

	// relevance-sorted; no explicit sort clause
	assert.NotContains(t, body, "sort")
}

func TestBuildJobQueryFilters(t *testing.T) {
	body := BuildJobQuery(dtos.JobSearchRequest{
		Location:  "Tel Aviv",
		Level:     "Senior",
		Type:      "Full-time",
		MinSalary: 120000,
	})

	boolQ := body["query"].(map[string]any)["bool"].(map[string]any)
	assert.Empty(t, boolQ["must"])

	filter := boolQ["filter"].([]map[string]any)
	require.Len(t, filter, 4)
	assert.Equal(t, "Tel Aviv", filter[0]["term"].(map[string]any)["location.keyword"])
	assert.Equal(t, "Senior", filter[1]["term"].(map[string]any)["level.keyword"])
	assert.Equal(t, "Full-time", filter[2]["term"].(map[string]any)["type.keyword"])

	rng := filter[3]["range"].(map[string]any)["salary"].(map[string]any)
	assert.Equal(t, int64(120000), rng["gte"])

	// no free text: newest first
	require.Contains(t, body, "sort")
}

func TestBuildJobQuerySizeBounds(t *testing.T) {
	assert.Equal(t, defaultSize, BuildJobQuery(dtos.JobSearchRequest{})["size"])
	assert.Equal(t, defaultSize, BuildJobQuery(dtos.JobSearchRequest{Size: 5000})["size"])
	assert.Equal(t, 5, BuildJobQuery(dtos.JobSearchRequest{Size: 5})["size"])
}

func TestNilIndexIsDisabled(t *testing.T) {
	var idx *JobIndex
	assert.False(t, idx.Enabled())

	idx2, err := New("", "")
	require.NoError(t, err)
	assert.False(t, idx2.Enabled())
}
