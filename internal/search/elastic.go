package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/lharari/jobboard/internal/dtos"
	"github.com/lharari/jobboard/internal/models"
)

const jobIndex = "jobs"

// JobIndex wraps the Elasticsearch client for job discovery. A nil
// *JobIndex is a valid no-op: indexing calls are skipped and Search
// reports unavailability.
type JobIndex struct {
	es *elasticsearch.Client
}

// New connects to Elasticsearch. Returns nil (search disabled) when no
// URL is configured.
func New(url, apiKey string) (*JobIndex, error) {
	if url == "" {
		return nil, nil
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		APIKey:    apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &JobIndex{es: es}, nil
}

// Enabled reports whether a search backend is configured.
func (idx *JobIndex) Enabled() bool {
	return idx != nil && idx.es != nil
}

// IndexJob upserts a job document. Index failures are logged, not
// returned: the database remains the source of truth and a stale index
// must not fail a recruiter's edit.
func (idx *JobIndex) IndexJob(ctx context.Context, job *models.Job) {
	if !idx.Enabled() {
		return
	}
	doc, err := json.Marshal(job)
	if err != nil {
		log.Printf("search: marshal job %d: %v", job.ID, err)
		return
	}
	res, err := idx.es.Index(
		jobIndex,
		bytes.NewReader(doc),
		idx.es.Index.WithDocumentID(strconv.FormatUint(uint64(job.ID), 10)),
		idx.es.Index.WithContext(ctx),
	)
	if err != nil {
		log.Printf("search: index job %d: %v", job.ID, err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("search: index job %d: %s", job.ID, res.String())
	}
}

// RemoveJob deletes a job document; missing documents are fine.
func (idx *JobIndex) RemoveJob(ctx context.Context, jobID uint) {
	if !idx.Enabled() {
		return
	}
	res, err := idx.es.Delete(
		jobIndex,
		strconv.FormatUint(uint64(jobID), 10),
		idx.es.Delete.WithContext(ctx),
	)
	if err != nil {
		log.Printf("search: remove job %d: %v", jobID, err)
		return
	}
	defer res.Body.Close()
}

// Search runs a filtered job query and returns matching documents.
func (idx *JobIndex) Search(ctx context.Context, req dtos.JobSearchRequest) ([]models.Job, error) {
	if !idx.Enabled() {
		return nil, fmt.Errorf("search backend not configured")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(BuildJobQuery(req)); err != nil {
		return nil, err
	}

	res, err := idx.es.Search(
		idx.es.Search.WithContext(ctx),
		idx.es.Search.WithIndex(jobIndex),
		idx.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.Job `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		jobs = append(jobs, h.Source)
	}
	return jobs, nil
}
