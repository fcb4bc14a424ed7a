package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/domain"
)

type Repository interface {
	// Index indexes a single audit event
	Index(ctx context.Context, event *domain.AuditEvent) error
	// BulkIndex indexes multiple audit events
	BulkIndex(ctx context.Context, events []domain.AuditEvent) error
	// Search searches audit events with the given filter
	Search(ctx context.Context, filter *domain.AuditEventFilter) ([]domain.AuditEvent, error)
	// CreateIndex creates an index for a tenant if it doesn't exist
	CreateIndex(ctx context.Context, tenantID string, t time.Time) error
	// DeleteIndex deletes an index for a tenant
	DeleteIndex(ctx context.Context, tenantID string) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, event *domain.AuditEvent) error {
	indexTime := time.Now()
	if !event.Timestamp.IsZero() {
		indexTime = event.Timestamp
	}
	indexName := r.config.GetIndexName(event.TenantScope(), indexTime)

	if err := r.CreateIndex(ctx, event.TenantScope(), indexTime); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: event.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndex(ctx context.Context, events []domain.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}

	// Group events by tenant and date
	groups := make(map[string][]domain.AuditEvent)
	for _, event := range events {
		indexTime := time.Now()
		if !event.Timestamp.IsZero() {
			indexTime = event.Timestamp
		}
		indexName := r.config.GetIndexName(event.TenantScope(), indexTime)
		groups[indexName] = append(groups[indexName], event)
	}

	for indexName, groupEvents := range groups {
		if err := r.bulkIndexGroup(ctx, indexName, groupEvents); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", indexName, err)
		}
	}

	return nil
}

func (r *repository) bulkIndexGroup(ctx context.Context, indexName string, events []domain.AuditEvent) error {
	if len(events) > 0 {
		indexTime := time.Now()
		if !events[0].Timestamp.IsZero() {
			indexTime = events[0].Timestamp
		}
		if err := r.CreateIndex(ctx, events[0].TenantScope(), indexTime); err != nil {
			return fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	var bulkBody strings.Builder
	for _, event := range events {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    event.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

// Search queries a tenant's index pattern, or every tenant's when the
// filter carries no tenant (operator cross-tenant views).
func (r *repository) Search(ctx context.Context, filter *domain.AuditEventFilter) ([]domain.AuditEvent, error) {
	pattern := r.config.GetAllIndexPattern()
	if filter.TenantID != "" {
		pattern = r.config.GetIndexPattern(filter.TenantID)
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{pattern},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.AuditEvent{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.AuditEvent `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var events []domain.AuditEvent
	for _, hit := range searchResult.Hits.Hits {
		events = append(events, hit.Source)
	}

	return events, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *repository) buildSearchQuery(filter *domain.AuditEventFilter) map[string]any {
	must := make([]map[string]any, 0)

	exactMatches := map[string]string{
		"event_name": filter.EventName,
		"actor":      filter.Actor,
	}
	for field, value := range exactMatches {
		if value != "" {
			must = append(must, createTermQuery(field, value))
		}
	}

	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		must = append(must, createTimeRangeQuery(filter.StartTime, filter.EndTime))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	// Most recent first
	query["sort"] = []map[string]any{
		{
			"timestamp": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

func createTimeRangeQuery(startTime, endTime time.Time) map[string]any {
	timeRange := make(map[string]any)
	if !startTime.IsZero() {
		timeRange["gte"] = startTime
	}
	if !endTime.IsZero() {
		timeRange["lte"] = endTime
	}
	return map[string]any{
		"range": map[string]any{
			"timestamp": timeRange,
		},
	}
}

func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"event_name": { "type": "keyword" },
				"actor": { "type": "keyword" },
				"detail": {
					"type": "object",
					"dynamic": true
				},
				"timestamp": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *repository) CreateIndex(ctx context.Context, tenantID string, t time.Time) error {
	indexName := r.config.GetIndexName(tenantID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

func (r *repository) DeleteIndex(ctx context.Context, tenantID string) error {
	deleteReq := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexPattern(tenantID)},
	}

	res, err := deleteReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}
