package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/repository"
	"github.com/complyhub/complyhub-api/internal/repository/opensearch"
	"github.com/complyhub/complyhub-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	osRepo repository.OpenSearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		osRepo:             opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) OpenSearch() repository.OpenSearchRepository {
	return r.osRepo
}
