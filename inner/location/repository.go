package location

import (
	"context"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
)

const locationColumns = "id, street_address, postal_code, city, state_province, country_id"

// Repository справочники регионов, стран и локаций
type Repository struct {
	db *sqlx.DB
}

func NewLocationRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) AddRegion(ctx context.Context, region *RegionEntity) error {
	return r.db.QueryRowxContext(ctx, "INSERT INTO regions (name) VALUES ($1) RETURNING id", region.Name).
		Scan(&region.Id)
}

func (r *Repository) FindRegionById(ctx context.Context, id int64) (region RegionEntity, err error) {
	err = r.db.GetContext(ctx, &region, "SELECT id, name FROM regions WHERE id = $1", id)
	return region, err
}

func (r *Repository) FindAllRegions(ctx context.Context) ([]RegionEntity, error) {
	var regions []RegionEntity
	err := r.db.SelectContext(ctx, &regions, "SELECT id, name FROM regions ORDER BY id")
	return regions, err
}

func (r *Repository) DeleteRegion(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM regions WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) AddCountry(ctx context.Context, country CountryEntity) error {
	_, err := r.db.NamedExecContext(ctx,
		"INSERT INTO countries (id, name, region_id) VALUES (:id, :name, :region_id)", country)
	return err
}

func (r *Repository) FindCountryById(ctx context.Context, id string) (country CountryEntity, err error) {
	err = r.db.GetContext(ctx, &country, "SELECT id, name, region_id FROM countries WHERE id = $1", id)
	return country, err
}

func (r *Repository) FindAllCountries(ctx context.Context) ([]CountryEntity, error) {
	var countries []CountryEntity
	err := r.db.SelectContext(ctx, &countries, "SELECT id, name, region_id FROM countries ORDER BY id")
	return countries, err
}

func (r *Repository) DeleteCountry(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM countries WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) Add(ctx context.Context, location *Entity) error {
	return r.db.QueryRowxContext(ctx,
		`INSERT INTO locations (street_address, postal_code, city, state_province, country_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		location.StreetAddress, location.PostalCode, location.City, location.StateProvince, location.CountryId,
	).Scan(&location.Id)
}

func (r *Repository) FindById(ctx context.Context, id int64) (location Entity, err error) {
	err = r.db.GetContext(ctx, &location, "SELECT "+locationColumns+" FROM locations WHERE id = $1", id)
	return location, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var locations []Entity
	err := r.db.SelectContext(ctx, &locations, "SELECT "+locationColumns+" FROM locations ORDER BY id")
	return locations, err
}

func (r *Repository) Update(ctx context.Context, location Entity) error {
	result, err := r.db.NamedExecContext(ctx,
		`UPDATE locations SET street_address = :street_address, postal_code = :postal_code, city = :city,
		state_province = :state_province, country_id = :country_id WHERE id = :id`,
		location)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}
