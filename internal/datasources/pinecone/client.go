package pinecone

import (
	"context"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.CandidateProximityLister = (*Client)(nil)

// maxTopK is the largest top_k Pinecone accepts for a query.
const maxTopK = 10000

// Client queries a Pinecone index holding one vector per candidate, with the
// candidate ID as vector ID and an opted_in metadata flag.
type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey, indexName, namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

func (c *Client) ListCandidatesNearVector(
	ctx context.Context,
	vector []float32,
	minScore float64,
	limit int,
) ([]domain.CandidateProximity, error) {
	if limit > maxTopK {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 || len(vector) == 0 {
		return nil, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() { _ = idxConn.Close() }()

	filter, err := optedInFilter()
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit), //nolint:gosec // bounded by maxTopK above
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for nearby candidates: %w", err)
	}

	return filterByScore(resp.Matches, minScore), nil
}

func optedInFilter() (*pinecone.MetadataFilter, error) {
	filter, err := structpb.NewStruct(map[string]any{
		"opted_in": map[string]any{
			"$eq": true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

// filterByScore keeps matches at or above minScore, preserving Pinecone's best-first order.
func filterByScore(matches []*pinecone.ScoredVector, minScore float64) []domain.CandidateProximity {
	results := []domain.CandidateProximity{}
	for _, match := range matches {
		if match == nil || match.Vector == nil {
			continue
		}
		if float64(match.Score) < minScore {
			continue
		}
		results = append(results, domain.CandidateProximity{
			CandidateID: match.Vector.Id,
			Score:       float64(match.Score),
		})
	}
	return results
}
