package searches

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
)

type searchPostgresRepository struct {
	db *sql.DB
}

var (
	searchRepositoryInstance contracts.SearchRepository
	onceSearchRepository     sync.Once
)

func NewSearchPostgresRepository(db *sql.DB) contracts.SearchRepository {
	onceSearchRepository.Do(func() {
		searchRepositoryInstance = &searchPostgresRepository{db: db}
	})
	return searchRepositoryInstance
}

func (r *searchPostgresRepository) CreateSearch(ctx context.Context, searchModel *models.Search) (string, error) {
	var searchID string
	err := r.db.QueryRowContext(ctx, queries.InsertSearch,
		searchModel.UserID,
		searchModel.Name,
		searchModel.Query,
		searchModel.Params,
	).Scan(&searchID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return searchID, nil
}

func (r *searchPostgresRepository) FindByID(ctx context.Context, searchID string) (*models.Search, error) {
	searchModel := new(models.Search)
	err := r.db.QueryRowContext(ctx, queries.SelectSearchByID, searchID).Scan(
		&searchModel.ID,
		&searchModel.UserID,
		&searchModel.Name,
		&searchModel.Query,
		&searchModel.Params,
		&searchModel.CreatedAt,
		&searchModel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrSearchNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return searchModel, nil
}

func (r *searchPostgresRepository) FindByUserID(ctx context.Context, userID string) ([]models.Search, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectSearchesByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	searches := make([]models.Search, 0)
	for rows.Next() {
		var searchModel models.Search
		err := rows.Scan(
			&searchModel.ID,
			&searchModel.UserID,
			&searchModel.Name,
			&searchModel.Query,
			&searchModel.Params,
			&searchModel.CreatedAt,
			&searchModel.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		searches = append(searches, searchModel)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return searches, nil
}

func (r *searchPostgresRepository) UpdateSearch(ctx context.Context, searchModel *models.Search) error {
	_, err := r.db.ExecContext(ctx, queries.UpdateSearchByID,
		searchModel.ID,
		searchModel.Name,
		searchModel.Query,
		searchModel.Params,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *searchPostgresRepository) DeleteByID(ctx context.Context, searchID string) error {
	if _, err := r.db.ExecContext(ctx, queries.DeleteSearchByID, searchID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
