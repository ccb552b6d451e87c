package properties

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/lib/pq"
)

type propertyPostgresRepository struct {
	db *sql.DB
}

var (
	propertyRepositoryInstance contracts.PropertyRepository
	oncePropertyRepository     sync.Once
)

func NewPropertyPostgresRepository(db *sql.DB) contracts.PropertyRepository {
	oncePropertyRepository.Do(func() {
		propertyRepositoryInstance = &propertyPostgresRepository{db: db}
	})
	return propertyRepositoryInstance
}

func (r *propertyPostgresRepository) CreateProperty(ctx context.Context, propertyModel *models.Property) (string, error) {
	var propertyID string
	err := r.db.QueryRowContext(ctx, queries.InsertProperty,
		propertyModel.UserID,
		propertyModel.Title,
		propertyModel.Description,
		propertyModel.Type,
		propertyModel.Price,
		propertyModel.City,
		propertyModel.Address,
		propertyModel.Bedrooms,
		propertyModel.Bathrooms,
		propertyModel.AreaSqm,
		propertyModel.Published,
		propertyModel.ImagePath,
	).Scan(&propertyID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return propertyID, nil
}

func (r *propertyPostgresRepository) FindByID(ctx context.Context, propertyID string) (*models.Property, error) {
	row := r.db.QueryRowContext(ctx, queries.SelectPropertyByID, propertyID)
	propertyModel, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPropertyNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return propertyModel, nil
}

func (r *propertyPostgresRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectAllProperties)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyPostgresRepository) FindPublished(ctx context.Context, limit, offset int) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectPublishedProperties, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyPostgresRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, queries.CountPublishedProperties).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}

func (r *propertyPostgresRepository) FindByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectPropertiesByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyPostgresRepository) FindByIDs(ctx context.Context, propertyIDs []string) ([]models.Property, error) {
	if len(propertyIDs) == 0 {
		return []models.Property{}, nil
	}
	rows, err := r.db.QueryContext(ctx, queries.SelectPropertiesByIDs, pq.Array(propertyIDs))
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyPostgresRepository) UpdateProperty(ctx context.Context, propertyModel *models.Property) error {
	_, err := r.db.ExecContext(ctx, queries.UpdatePropertyByID,
		propertyModel.ID,
		propertyModel.Title,
		propertyModel.Description,
		propertyModel.Type,
		propertyModel.Price,
		propertyModel.City,
		propertyModel.Address,
		propertyModel.Bedrooms,
		propertyModel.Bathrooms,
		propertyModel.AreaSqm,
		propertyModel.Published,
		propertyModel.ImagePath,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *propertyPostgresRepository) DeleteByID(ctx context.Context, propertyID string) error {
	if _, err := r.db.ExecContext(ctx, queries.DeletePropertyByID, propertyID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (r *propertyPostgresRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, queries.CountAllProperties).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}

func (r *propertyPostgresRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, queries.CountPropertiesCreatedSince, since).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}

func scanProperty(row *sql.Row) (*models.Property, error) {
	propertyModel := new(models.Property)
	err := row.Scan(
		&propertyModel.ID,
		&propertyModel.UserID,
		&propertyModel.Title,
		&propertyModel.Description,
		&propertyModel.Type,
		&propertyModel.Price,
		&propertyModel.City,
		&propertyModel.Address,
		&propertyModel.Bedrooms,
		&propertyModel.Bathrooms,
		&propertyModel.AreaSqm,
		&propertyModel.Published,
		&propertyModel.ImagePath,
		&propertyModel.CreatedAt,
		&propertyModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return propertyModel, nil
}

func collectProperties(rows *sql.Rows) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	for rows.Next() {
		var propertyModel models.Property
		err := rows.Scan(
			&propertyModel.ID,
			&propertyModel.UserID,
			&propertyModel.Title,
			&propertyModel.Description,
			&propertyModel.Type,
			&propertyModel.Price,
			&propertyModel.City,
			&propertyModel.Address,
			&propertyModel.Bedrooms,
			&propertyModel.Bathrooms,
			&propertyModel.AreaSqm,
			&propertyModel.Published,
			&propertyModel.ImagePath,
			&propertyModel.CreatedAt,
			&propertyModel.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		properties = append(properties, propertyModel)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return properties, nil
}
