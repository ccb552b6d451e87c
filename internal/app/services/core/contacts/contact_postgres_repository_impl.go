package contacts

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
)

type contactPostgresRepository struct {
	db *sql.DB
}

var (
	contactRepositoryInstance contracts.ContactRepository
	onceContactRepository     sync.Once
)

func NewContactPostgresRepository(db *sql.DB) contracts.ContactRepository {
	onceContactRepository.Do(func() {
		contactRepositoryInstance = &contactPostgresRepository{db: db}
	})
	return contactRepositoryInstance
}

func (r *contactPostgresRepository) CreateContact(ctx context.Context, contactModel *models.Contact) (string, error) {
	var contactID string
	err := r.db.QueryRowContext(ctx, queries.InsertContact,
		contactModel.PropertyID,
		contactModel.UserID,
		contactModel.Name,
		contactModel.Email,
		contactModel.Phone,
		contactModel.Message,
		contactModel.DesiredDate,
	).Scan(&contactID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return contactID, nil
}

func (r *contactPostgresRepository) FindByID(ctx context.Context, contactID string) (*models.Contact, error) {
	contactModel := new(models.Contact)
	err := r.db.QueryRowContext(ctx, queries.SelectContactByID, contactID).Scan(
		&contactModel.ID,
		&contactModel.PropertyID,
		&contactModel.UserID,
		&contactModel.Name,
		&contactModel.Email,
		&contactModel.Phone,
		&contactModel.Message,
		&contactModel.DesiredDate,
		&contactModel.CreatedAt,
		&contactModel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrContactNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return contactModel, nil
}

func (r *contactPostgresRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectAllContacts)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactPostgresRepository) FindByUserID(ctx context.Context, userID string) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectContactsByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactPostgresRepository) FindByPropertyID(ctx context.Context, propertyID string) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, queries.SelectContactsByPropertyID, propertyID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactPostgresRepository) UpdateContact(ctx context.Context, contactModel *models.Contact) error {
	_, err := r.db.ExecContext(ctx, queries.UpdateContactByID,
		contactModel.ID,
		contactModel.Name,
		contactModel.Email,
		contactModel.Phone,
		contactModel.Message,
		contactModel.DesiredDate,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *contactPostgresRepository) DeleteByID(ctx context.Context, contactID string) error {
	if _, err := r.db.ExecContext(ctx, queries.DeleteContactByID, contactID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func collectContacts(rows *sql.Rows) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contactModel models.Contact
		err := rows.Scan(
			&contactModel.ID,
			&contactModel.PropertyID,
			&contactModel.UserID,
			&contactModel.Name,
			&contactModel.Email,
			&contactModel.Phone,
			&contactModel.Message,
			&contactModel.DesiredDate,
			&contactModel.CreatedAt,
			&contactModel.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		contacts = append(contacts, contactModel)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return contacts, nil
}
