package users

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
	"time"
)

type userPostgresRepository struct {
	db *sql.DB
}

var (
	userRepositoryInstance contracts.UserRepository
	onceUserRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB) contracts.UserRepository {
	onceUserRepository.Do(func() {
		userRepositoryInstance = &userPostgresRepository{db: db}
	})
	return userRepositoryInstance
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, queries.InsertUser,
		userModel.Name,
		userModel.Email,
		userModel.Password,
		userModel.Role,
	).Scan(&userID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return userID, nil
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	userModel := new(models.User)
	err := r.db.QueryRowContext(ctx, queries.SelectUserByID, userID).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Email,
		&userModel.Password,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrUserNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return userModel, nil
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	userModel := new(models.User)
	err := r.db.QueryRowContext(ctx, queries.SelectUserByEmail, email).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Email,
		&userModel.Password,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrUserNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return userModel, nil
}

func (r *userPostgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectAllUsers)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var userModel models.User
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.Password,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		users = append(users, userModel)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return users, nil
}

func (r *userPostgresRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	_, err := r.db.ExecContext(ctx, queries.UpdateUserByID,
		userModel.ID,
		userModel.Name,
		userModel.Email,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) DeleteByID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, queries.DeleteUserByID, userID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (r *userPostgresRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, queries.CountAllUsers).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}

func (r *userPostgresRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, queries.CountUsersCreatedSince, since).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err)
	}
	return count, nil
}
