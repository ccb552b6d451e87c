package favorites

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
)

type favoritePostgresRepository struct {
	db *sql.DB
}

var (
	favoriteRepositoryInstance contracts.FavoriteRepository
	onceFavoriteRepository     sync.Once
)

func NewFavoritePostgresRepository(db *sql.DB) contracts.FavoriteRepository {
	onceFavoriteRepository.Do(func() {
		favoriteRepositoryInstance = &favoritePostgresRepository{db: db}
	})
	return favoriteRepositoryInstance
}

func (r *favoritePostgresRepository) CreateFavorite(ctx context.Context, favoriteModel *models.Favorite) (string, error) {
	var favoriteID string
	err := r.db.QueryRowContext(ctx, queries.InsertFavorite,
		favoriteModel.UserID,
		favoriteModel.PropertyID,
	).Scan(&favoriteID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return favoriteID, nil
}

func (r *favoritePostgresRepository) FindByID(ctx context.Context, favoriteID string) (*models.Favorite, error) {
	favoriteModel := new(models.Favorite)
	err := r.db.QueryRowContext(ctx, queries.SelectFavoriteByID, favoriteID).Scan(
		&favoriteModel.ID,
		&favoriteModel.UserID,
		&favoriteModel.PropertyID,
		&favoriteModel.CreatedAt,
		&favoriteModel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrFavoriteNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return favoriteModel, nil
}

func (r *favoritePostgresRepository) FindAll(ctx context.Context) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectAllFavorites)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectFavorites(rows)
}

func (r *favoritePostgresRepository) FindByUserID(ctx context.Context, userID string) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectFavoritesByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectFavorites(rows)
}

func (r *favoritePostgresRepository) UpdateFavorite(ctx context.Context, favoriteModel *models.Favorite) error {
	_, err := r.db.ExecContext(ctx, queries.UpdateFavoriteByID,
		favoriteModel.ID,
		favoriteModel.PropertyID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *favoritePostgresRepository) DeleteByID(ctx context.Context, favoriteID string) error {
	if _, err := r.db.ExecContext(ctx, queries.DeleteFavoriteByID, favoriteID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func collectFavorites(rows *sql.Rows) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var favoriteModel models.Favorite
		err := rows.Scan(
			&favoriteModel.ID,
			&favoriteModel.UserID,
			&favoriteModel.PropertyID,
			&favoriteModel.CreatedAt,
			&favoriteModel.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		favorites = append(favorites, favoriteModel)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return favorites, nil
}
