package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

// ClientService owns client CRUD, buyer linking, and the search index.
type ClientService struct {
	Repo    repository.ClientRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewClientService(repo repository.ClientRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ClientService {
	return &ClientService{Repo: repo, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *ClientService) Create(ctx context.Context, c *entity.Client) error {
	if err := s.Repo.Create(ctx, c); err != nil {
		return err
	}
	s.index(ctx, c)
	return nil
}

func (s *ClientService) List(ctx context.Context, userID string) ([]entity.ClientSummary, error) {
	return s.Repo.ListByOwner(ctx, userID)
}

func (s *ClientService) Get(ctx context.Context, userID, id string) (*entity.ClientDetail, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *ClientService) Update(ctx context.Context, userID, id string, in repository.ClientUpdate) (*entity.Client, error) {
	c, err := s.Repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, err
	}
	s.index(ctx, c)
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

func (s *ClientService) LinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	return s.Repo.LinkBuyer(ctx, userID, clientID, buyerID)
}

func (s *ClientService) UnlinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	return s.Repo.UnlinkBuyer(ctx, userID, clientID, buyerID)
}

// index mirrors the client into Elasticsearch. Search is best-effort; an
// indexing failure is logged and does not fail the write path.
func (s *ClientService) index(ctx context.Context, c *entity.Client) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":            c.ID,
		"user_id":       c.UserID,
		"name":          c.Name,
		"business_name": c.BusinessName,
		"business_type": c.BusinessType,
		"status":        c.Status,
		"notes":         c.Notes,
		"updated_at":    c.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: c.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("client_id", c.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("client_id", c.ID).Warn("es index response error")
	}
}

func (s *ClientService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("client_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over the caller's own clients. The owner
// filter is part of the query, matching the SQL scoping contract.
func (s *ClientService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"name^2", "business_name^2", "notes"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(cctx),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
